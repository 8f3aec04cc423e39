package itemgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/arjndr/catena/internal/itembank"
	"github.com/arjndr/catena/internal/llm"
)

// LLMDrafter implements Drafter using an LLM provider.
type LLMDrafter struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMDrafter with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMDrafter {
	return &LLMDrafter{provider: provider, config: cfg}
}

// draftOutput is the raw LLM response before validation.
type draftOutput struct {
	Question    string   `json:"question"`
	Choices     []string `json:"choices"`
	AnswerIndex int      `json:"answer_index"`
	Rationale   string   `json:"rationale"`
}

// Draft produces a single candidate item for the given input.
func (d *LLMDrafter) Draft(ctx context.Context, input DraftInput) (*itembank.Item, error) {
	ctx = llm.WithPurpose(ctx, "item-draft")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, d.config)},
		},
		Schema:      ItemDraftSchema,
		MaxTokens:   d.config.MaxTokens,
		Temperature: d.config.Temperature,
	}

	resp, err := d.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM drafting failed: %w", err)
	}

	var raw draftOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	it := &itembank.Item{
		ID:          draftID(input.Topic),
		Level:       input.Level,
		Difficulty:  input.Difficulty,
		Question:    raw.Question,
		Choices:     raw.Choices,
		AnswerIndex: raw.AnswerIndex,
	}

	for _, v := range d.config.Validators {
		if verr := v.Validate(it, input); verr != nil {
			return nil, verr
		}
	}

	return it, nil
}

// draftID builds a bank-unique ID from the topic plus a random suffix.
func draftID(topic string) string {
	slug := strings.ToLower(strings.TrimSpace(topic))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "item"
	}
	return slug + "-" + uuid.NewString()[:8]
}
