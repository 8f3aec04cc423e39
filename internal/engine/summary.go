package engine

import (
	"time"

	"github.com/arjndr/catena/internal/irt"
	"github.com/arjndr/catena/internal/itembank"
)

// TagStats counts attempts and correct answers for one tag value.
type TagStats struct {
	Attempted int `json:"attempted"`
	Correct   int `json:"correct"`
}

// Summary is the roll-up reported during and after an attempt.
type Summary struct {
	AttemptID      string        `json:"attempt_id"`
	Bank           string        `json:"bank"`
	Theta          float64       `json:"theta"`
	Converged      bool          `json:"converged"`
	Band           irt.Band      `json:"band"`
	TotalResponses int           `json:"total_responses"`
	CorrectCount   int           `json:"correct_count"`
	AccuracyPct    float64       `json:"accuracy_pct"`
	AvgElapsed     time.Duration `json:"avg_elapsed"`

	// ByLevel and ByDifficulty break attempts down by the item tags.
	ByLevel      map[itembank.CognitiveLevel]TagStats  `json:"by_level"`
	ByDifficulty map[itembank.DifficultyLabel]TagStats `json:"by_difficulty"`
}

// Summary builds the current roll-up. Valid in the in-progress and
// completed phases.
func (e *Engine) Summary() *Summary {
	s := &Summary{
		AttemptID:      e.attemptID,
		Bank:           e.bankName,
		Theta:          e.theta,
		Converged:      e.Converged(),
		Band:           e.Band(),
		TotalResponses: len(e.responses),
		ByLevel:        make(map[itembank.CognitiveLevel]TagStats),
		ByDifficulty:   make(map[itembank.DifficultyLabel]TagStats),
	}

	var totalElapsed time.Duration
	for _, r := range e.responses {
		totalElapsed += r.Elapsed
		if r.Correct {
			s.CorrectCount++
		}

		it, ok := e.Item(r.ItemID)
		if !ok {
			continue // responses always reference pool items
		}

		lvl := s.ByLevel[it.Level]
		lvl.Attempted++
		if r.Correct {
			lvl.Correct++
		}
		s.ByLevel[it.Level] = lvl

		diff := s.ByDifficulty[it.Difficulty]
		diff.Attempted++
		if r.Correct {
			diff.Correct++
		}
		s.ByDifficulty[it.Difficulty] = diff
	}

	if s.TotalResponses > 0 {
		s.AccuracyPct = 100 * float64(s.CorrectCount) / float64(s.TotalResponses)
		s.AvgElapsed = totalElapsed / time.Duration(s.TotalResponses)
	}

	return s
}
