package itemgen

import (
	"fmt"

	"github.com/arjndr/catena/internal/itembank"
)

// Validator checks a drafted item for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages, e.g.
	// "structural".
	Name() string

	// Validate checks the item and returns nil if it passes.
	Validate(it *itembank.Item, input DraftInput) *ValidationError
}

// ValidationError describes why a drafted item failed validation.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool // whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
