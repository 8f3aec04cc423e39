package itemgen

import "github.com/arjndr/catena/internal/itembank"

// StructuralValidator checks that a drafted item has a question, four
// distinct choices, and an answer index pointing at one of them.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(it *itembank.Item, _ DraftInput) *ValidationError {
	if it.Question == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question is empty",
			Retryable: true,
		}
	}
	if len(it.Question) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question exceeds 500 characters",
			Retryable: true,
		}
	}
	if len(it.Choices) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "choices must contain exactly 4 options",
			Retryable: true,
		}
	}
	seen := make(map[string]bool, len(it.Choices))
	for _, c := range it.Choices {
		if c == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "choice text is empty",
				Retryable: true,
			}
		}
		if seen[c] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "choices contain duplicates",
				Retryable: true,
			}
		}
		seen[c] = true
	}
	if it.AnswerIndex < 0 || it.AnswerIndex >= len(it.Choices) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer_index out of range",
			Retryable: true,
		}
	}
	return nil
}
