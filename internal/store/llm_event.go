package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMRequestEventData captures one LLM API call for the audit trail.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int

	// EstimatedCost is the request's list-price cost in USD, zero when
	// the model has no pricing entry.
	EstimatedCost float64

	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEventRepo appends LLM request events.
type LLMEventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

type llmEventRepo struct {
	db *sql.DB
}

func (r *llmEventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_events (
			created_at, provider, model, purpose, input_tokens,
			output_tokens, estimated_cost, latency_ms, success, error_message
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now(), data.Provider, data.Model, data.Purpose, data.InputTokens,
		data.OutputTokens, data.EstimatedCost, data.LatencyMs, data.Success, data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("save llm event: %w", err)
	}
	return nil
}
