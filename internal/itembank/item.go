package itembank

import "fmt"

// CognitiveLevel classifies what kind of thinking an item demands.
type CognitiveLevel string

const (
	LevelRecall        CognitiveLevel = "recall"
	LevelComprehension CognitiveLevel = "comprehension"
	LevelApplication   CognitiveLevel = "application"
)

// AllLevels returns the cognitive levels in ascending order of demand.
func AllLevels() []CognitiveLevel {
	return []CognitiveLevel{LevelRecall, LevelComprehension, LevelApplication}
}

// ParseLevel converts a string to a CognitiveLevel.
func ParseLevel(s string) (CognitiveLevel, error) {
	switch CognitiveLevel(s) {
	case LevelRecall, LevelComprehension, LevelApplication:
		return CognitiveLevel(s), nil
	}
	return "", fmt.Errorf("unknown cognitive level: %q", s)
}

// DifficultyLabel is the author-assigned difficulty tag.
type DifficultyLabel string

const (
	DifficultyEasy   DifficultyLabel = "easy"
	DifficultyMedium DifficultyLabel = "medium"
	DifficultyHard   DifficultyLabel = "hard"
)

// AllDifficulties returns the difficulty labels in ascending order.
func AllDifficulties() []DifficultyLabel {
	return []DifficultyLabel{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a string to a DifficultyLabel.
func ParseDifficulty(s string) (DifficultyLabel, error) {
	switch DifficultyLabel(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return DifficultyLabel(s), nil
	}
	return "", fmt.Errorf("unknown difficulty label: %q", s)
}

// Item is a single assessment item. The engine reads only ID, Level and
// Difficulty; the presentation fields are passed through untouched to
// whatever front end displays the item.
type Item struct {
	// ID is the stable identifier, unique within a bank.
	ID string `json:"id"`

	// Level is the cognitive-level tag.
	Level CognitiveLevel `json:"cognitive_level"`

	// Difficulty is the author-assigned difficulty tag.
	Difficulty DifficultyLabel `json:"difficulty"`

	// Question is the prompt shown to the test-taker.
	Question string `json:"question"`

	// Choices holds the answer options. Exactly one is correct.
	Choices []string `json:"choices"`

	// AnswerIndex is the index into Choices of the correct option.
	AnswerIndex int `json:"answer_index"`
}

// Scale returns the item's difficulty parameter on the ability scale.
func (it Item) Scale() float64 {
	return Difficulty(it.Level, it.Difficulty)
}
