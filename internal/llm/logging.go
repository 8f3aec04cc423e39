package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/arjndr/catena/internal/store"
)

// loggingProvider records every request as an event row. Bodies are
// deliberately not persisted; only metadata needed for the stats view.
type loggingProvider struct {
	inner  Provider
	events store.LLMEventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, events store.LLMEventRepo) Provider {
	return &loggingProvider{inner: p, events: events}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		if cost := LookupCost(resp.Model); cost != nil {
			data.EstimatedCost = cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)
		}
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// A failed event write must not fail the request itself.
	if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}
