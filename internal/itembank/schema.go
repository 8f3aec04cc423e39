package itembank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema is the JSON Schema every bank file must satisfy.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"format_version": map[string]any{
			"type":        "string",
			"description": "Semver of the bank file format, e.g. v1.0.0",
		},
		"name": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"items": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"cognitive_level": map[string]any{
						"type": "string",
						"enum": []any{"recall", "comprehension", "application"},
					},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []any{"easy", "medium", "hard"},
					},
					"question": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"choices": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items":    map[string]any{"type": "string"},
					},
					"answer_index": map[string]any{
						"type":    "integer",
						"minimum": 0,
					},
				},
				"required":             []any{"id", "cognitive_level", "difficulty", "question", "choices", "answer_index"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"format_version", "name", "items"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ValidateSchema checks raw bank JSON against the bank schema.
func ValidateSchema(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compileBankSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("bank schema validation failed: %w", err)
	}
	return nil
}

func compileBankSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a parsed JSON value, not Go maps with
		// mixed concrete types. Round-trip through encoding/json.
		defBytes, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = err
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = err
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://item-bank.json"
		if err := c.AddResource(url, defParsed); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
