package tui

import (
	"math"
	"testing"
)

func TestPrecisionPct(t *testing.T) {
	if p := precisionPct(math.Inf(1), 0.3); p != 0 {
		t.Errorf("infinite SE should give 0, got %f", p)
	}
	if p := precisionPct(0.3, 0.3); p != 1 {
		t.Errorf("SE at threshold should give 1, got %f", p)
	}
	if p := precisionPct(0.1, 0.3); p != 1 {
		t.Errorf("SE below threshold should clamp to 1, got %f", p)
	}
	p := precisionPct(0.6, 0.3)
	if p <= 0 || p >= 1 {
		t.Errorf("SE above threshold should be partial, got %f", p)
	}
	if math.Abs(p-0.25) > 1e-9 {
		t.Errorf("expected 0.25 at double the threshold, got %f", p)
	}
}
