package itembank

// SampleBank returns a small built-in bank so play and simulate work
// without a bank file. Nine items, one per (level, difficulty) pair.
func SampleBank() *Bank {
	return &Bank{
		FormatVersion: FormatVersion,
		Name:          "sample",
		Items: []Item{
			{
				ID: "photo-define", Level: LevelRecall, Difficulty: DifficultyEasy,
				Question:    "Which gas do plants absorb during photosynthesis?",
				Choices:     []string{"Oxygen", "Carbon dioxide", "Nitrogen", "Hydrogen"},
				AnswerIndex: 1,
			},
			{
				ID: "cell-name", Level: LevelRecall, Difficulty: DifficultyMedium,
				Question:    "What is the control center of a cell called?",
				Choices:     []string{"Nucleus", "Ribosome", "Membrane", "Cytoplasm"},
				AnswerIndex: 0,
			},
			{
				ID: "bond-recall", Level: LevelRecall, Difficulty: DifficultyHard,
				Question:    "Which bond involves sharing electron pairs between atoms?",
				Choices:     []string{"Ionic", "Covalent", "Metallic", "Hydrogen"},
				AnswerIndex: 1,
			},
			{
				ID: "food-chain", Level: LevelComprehension, Difficulty: DifficultyEasy,
				Question:    "In a food chain, what does an arrow between two organisms represent?",
				Choices:     []string{"Competition", "Energy transfer", "Reproduction", "Migration"},
				AnswerIndex: 1,
			},
			{
				ID: "density-why", Level: LevelComprehension, Difficulty: DifficultyMedium,
				Question:    "Why does ice float on liquid water?",
				Choices:     []string{"It is colder", "It is less dense", "It is purer", "It has more mass"},
				AnswerIndex: 1,
			},
			{
				ID: "circuit-explain", Level: LevelComprehension, Difficulty: DifficultyHard,
				Question:    "Why does adding a resistor in series dim a bulb?",
				Choices:     []string{"It raises the voltage", "It reduces the current", "It stores charge", "It reverses polarity"},
				AnswerIndex: 1,
			},
			{
				ID: "lever-apply", Level: LevelApplication, Difficulty: DifficultyEasy,
				Question:    "To lift a heavy rock with a lever most easily, where should you push?",
				Choices:     []string{"Close to the fulcrum", "Far from the fulcrum", "On the fulcrum", "Under the rock"},
				AnswerIndex: 1,
			},
			{
				ID: "solution-apply", Level: LevelApplication, Difficulty: DifficultyMedium,
				Question:    "You need a 10% salt solution. How much salt for 200 g of solution?",
				Choices:     []string{"10 g", "20 g", "2 g", "200 g"},
				AnswerIndex: 1,
			},
			{
				ID: "genetics-apply", Level: LevelApplication, Difficulty: DifficultyHard,
				Question:    "Two carriers of a recessive trait have a child. What is the chance the child shows the trait?",
				Choices:     []string{"0%", "25%", "50%", "100%"},
				AnswerIndex: 1,
			},
		},
	}
}
