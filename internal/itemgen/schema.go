package itemgen

import "github.com/arjndr/catena/internal/llm"

// ItemDraftSchema defines the JSON schema for LLM item-drafting
// responses.
var ItemDraftSchema = &llm.Schema{
	Name:        "item-draft",
	Description: "A single multiple-choice assessment item",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the test taker, in plain ASCII text",
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 answer options, one of which is correct",
			},
			"answer_index": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     3,
				"description": "Zero-based index of the correct option in choices",
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "A short note on why the correct option is correct, for reviewers",
			},
		},
		"required":             []any{"question", "choices", "answer_index", "rationale"},
		"additionalProperties": false,
	},
}
