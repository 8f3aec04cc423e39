// Package llm abstracts the hosted-model providers used for drafting
// candidate assessment items at authoring time. Nothing in the adaptive
// engine depends on this package.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single entry point for model interaction. Callers send
// a Request and get structured JSON back.
type Provider interface {
	// Generate sends a prompt and returns the model output. When the
	// request carries a Schema, the returned Content is JSON that has
	// been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Item drafting is single-turn, so
	// this is normally one user message.
	Messages []Message

	// Schema, when set, switches the provider to its native structured
	// output mechanism and validates the result.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness in [0, 1]. Zero means
	// deterministic.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must satisfy.
type Schema struct {
	// Name identifies the schema to the provider (tool name, schema
	// name). Kebab-case.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model output.
type Response struct {
	// Content is validated JSON when the request had a Schema,
	// otherwise the raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is per-request token accounting.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
