package llm

import (
	"context"
	"math"
	"testing"
)

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 3, OutputPerMTok: 15}

	// 2000 in + 1000 out: 2000*3/1e6 + 1000*15/1e6 = 0.006 + 0.015.
	got := c.Cost(2000, 1000)
	if math.Abs(got-0.021) > 1e-12 {
		t.Errorf("Cost(2000, 1000) = %v, want 0.021", got)
	}

	if c.Cost(0, 0) != 0 {
		t.Errorf("Cost(0, 0) = %v, want 0", c.Cost(0, 0))
	}
}

func TestLookupCost(t *testing.T) {
	// Every model id an adapter can resolve to must be priced, or cost
	// tracking silently records zeros.
	for _, id := range []string{
		"claude-sonnet-4-20250514",
		"claude-haiku-4-5-20251001",
		"gpt-4o",
		"gpt-4o-mini",
		"gemini-2.0-flash",
		"gemini-2.0-pro",
	} {
		if LookupCost(id) == nil {
			t.Errorf("no pricing entry for %q", id)
		}
	}

	if LookupCost("mock") != nil {
		t.Error("mock model should have no pricing entry")
	}
}

func TestLogging_EstimatesCost(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: draftJSON,
			Usage:   Usage{InputTokens: 1_000_000, OutputTokens: 0},
			Model:   "gpt-4o-mini",
		},
	)
	events := &fakeEvents{}
	p := WithLogging(mock, events)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(events.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events.events))
	}
	// 1M input tokens of gpt-4o-mini list at $0.15.
	if got := events.events[0].EstimatedCost; math.Abs(got-0.15) > 1e-12 {
		t.Errorf("EstimatedCost = %v, want 0.15", got)
	}
}
