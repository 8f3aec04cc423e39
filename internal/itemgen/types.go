package itemgen

import (
	"context"

	"github.com/arjndr/catena/internal/itembank"
)

// DraftInput holds all context needed to draft a new item.
type DraftInput struct {
	// Topic is the subject area the item should cover,
	// e.g. "photosynthesis" or "Newton's laws".
	Topic string

	// Level is the cognitive level the item targets.
	Level itembank.CognitiveLevel

	// Difficulty is the difficulty label the item targets.
	Difficulty itembank.DifficultyLabel

	// Existing contains question texts already present in the bank
	// for this topic. Used for deduplication in the prompt.
	Existing []string
}

// Drafter produces candidate items using an LLM provider.
// Drafted items are proposals; they enter the bank only after human
// review.
type Drafter interface {
	// Draft produces a single candidate item for the given input.
	// All configured validators run before it returns.
	Draft(ctx context.Context, input DraftInput) (*itembank.Item, error)
}
