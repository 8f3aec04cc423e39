package irt

import (
	"math"
	"testing"
)

func TestUpdate_WrongAnswerAtNeutral(t *testing.T) {
	// theta=0, b=0: p=0.5, wrong answer moves theta to 0 + 0.4*(0-0.5) = -0.2.
	e := NewEstimator()
	got := e.Update(0, 0, false)
	if !almostEqual(got, -0.2) {
		t.Errorf("Update(0, 0, wrong) = %v, want -0.2", got)
	}
}

func TestUpdate_CorrectAnswerAtNeutral(t *testing.T) {
	e := NewEstimator()
	got := e.Update(0, 0, true)
	if !almostEqual(got, 0.2) {
		t.Errorf("Update(0, 0, correct) = %v, want 0.2", got)
	}
}

func TestUpdate_Direction(t *testing.T) {
	e := NewEstimator()
	for _, theta := range []float64{-2, 0, 2} {
		for _, b := range []float64{-2, 0, 2} {
			if up := e.Update(theta, b, true); up <= theta && theta < e.AbilityBound {
				t.Errorf("correct answer did not raise theta=%v, b=%v: %v", theta, b, up)
			}
			if down := e.Update(theta, b, false); down >= theta && theta > -e.AbilityBound {
				t.Errorf("wrong answer did not lower theta=%v, b=%v: %v", theta, b, down)
			}
		}
	}
}

func TestUpdate_SurpriseScalesStep(t *testing.T) {
	// Getting an easy item wrong moves theta more than getting a hard
	// item wrong: the residual r-p is larger in magnitude.
	e := NewEstimator()
	easyDrop := 0.0 - e.Update(0, -2, false)
	hardDrop := 0.0 - e.Update(0, 2, false)
	if easyDrop <= hardDrop {
		t.Errorf("easy miss drop %v <= hard miss drop %v", easyDrop, hardDrop)
	}
}

func TestUpdate_ClampedToBound(t *testing.T) {
	e := NewEstimator()

	theta := 0.0
	for range 100 {
		theta = e.Update(theta, -3, true)
	}
	if theta > e.AbilityBound {
		t.Errorf("theta = %v exceeds bound %v", theta, e.AbilityBound)
	}

	theta = 0.0
	for range 100 {
		theta = e.Update(theta, 3, false)
	}
	if theta < -e.AbilityBound {
		t.Errorf("theta = %v exceeds lower bound %v", theta, -e.AbilityBound)
	}
}

func TestUpdate_AlwaysFinite(t *testing.T) {
	e := NewEstimator()
	theta := 0.0
	for i := range 1000 {
		theta = e.Update(theta, float64(i%7)-3, i%3 == 0)
		if math.IsNaN(theta) || math.IsInf(theta, 0) {
			t.Fatalf("theta not finite after %d updates: %v", i+1, theta)
		}
	}
}

func TestStandardError_EmptyHistory(t *testing.T) {
	e := NewEstimator()
	if se := e.StandardError(0, nil); !math.IsInf(se, 1) {
		t.Errorf("StandardError with no responses = %v, want +Inf", se)
	}
	if e.Converged(0, nil) {
		t.Error("Converged with no responses")
	}
}

func TestStandardError_SingleMatchedItem(t *testing.T) {
	// One item at b=theta: information 0.25, SE = 1/sqrt(0.25) = 2.
	e := NewEstimator()
	if se := e.StandardError(0, []float64{0}); !almostEqual(se, 2.0) {
		t.Errorf("StandardError = %v, want 2.0", se)
	}
}

func TestStandardError_DecreasesWithHistory(t *testing.T) {
	e := NewEstimator()
	recorded := []float64{}
	prev := math.Inf(1)
	for range 10 {
		recorded = append(recorded, 0)
		se := e.StandardError(0, recorded)
		if se >= prev {
			t.Fatalf("SE did not decrease: %v -> %v", prev, se)
		}
		prev = se
	}
}

func TestStandardError_MatchedStreamTrend(t *testing.T) {
	// 20 items matched to the running estimate: SE must fall on every
	// step. It cannot reach the convergence threshold yet — information
	// caps at 0.25 per item, so 20 items bound SE at 1/sqrt(5) ≈ 0.447.
	e := NewEstimator()
	theta := 0.0
	var recorded []float64
	prev := math.Inf(1)

	for i := range 20 {
		b := theta // selector would pick the closest item
		recorded = append(recorded, b)
		theta = e.Update(theta, b, i%2 == 0)
		se := e.StandardError(theta, recorded)
		if se >= prev {
			t.Fatalf("SE rose on item %d: %v -> %v", i+1, prev, se)
		}
		prev = se
	}

	if prev > 0.46 {
		t.Errorf("SE after 20 matched items = %v, want near 0.447", prev)
	}
	if e.Converged(theta, recorded) {
		t.Errorf("converged after 20 items with SE %v; threshold is %v", prev, e.SEThreshold)
	}
}

func TestConverged_NeedsFortyFiveMatchedItems(t *testing.T) {
	// With information capped at 0.25 per item, SE = 1/sqrt(n/4) first
	// drops below the 0.3 threshold at n = 45 perfectly matched items.
	e := NewEstimator()

	matched := make([]float64, 44)
	if e.Converged(0, matched) {
		t.Errorf("converged with 44 matched items; SE = %v", e.StandardError(0, matched))
	}

	matched = append(matched, 0)
	if !e.Converged(0, matched) {
		t.Errorf("not converged with 45 matched items; SE = %v", e.StandardError(0, matched))
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		theta float64
		want  Band
	}{
		{-3.0, BandBelowAverage},
		{-1.6, BandBelowAverage},
		{-1.5, BandApproaching},
		{-0.6, BandApproaching},
		{-0.5, BandAverage},
		{0.0, BandAverage},
		{0.5, BandAverage},
		{0.6, BandAboveAverage},
		{1.5, BandAboveAverage},
		{1.6, BandExcellent},
		{3.0, BandExcellent},
	}
	for _, tt := range tests {
		if got := BandFor(tt.theta); got != tt.want {
			t.Errorf("BandFor(%v) = %q, want %q", tt.theta, got, tt.want)
		}
	}
}

func TestAllBands_Ordered(t *testing.T) {
	if len(AllBands()) != 5 {
		t.Fatalf("len(AllBands()) = %d, want 5", len(AllBands()))
	}
}
