package itembank

// Calibration table. Cognitive level sets the base position on the
// difficulty scale; the author's difficulty label nudges it. The resulting
// parameter shares a scale with the ability estimate: larger is harder.
var (
	levelOffsets = map[CognitiveLevel]float64{
		LevelRecall:        -1.5,
		LevelComprehension: 0.0,
		LevelApplication:   1.5,
	}

	labelAdjusts = map[DifficultyLabel]float64{
		DifficultyEasy:   -0.5,
		DifficultyMedium: 0.0,
		DifficultyHard:   0.5,
	}
)

// Difficulty maps an item's pedagogical tags to its scalar difficulty
// parameter. Derived only from the tags, never from response data.
func Difficulty(level CognitiveLevel, label DifficultyLabel) float64 {
	return levelOffsets[level] + labelAdjusts[label]
}
