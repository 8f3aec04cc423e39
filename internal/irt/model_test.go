package irt

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestProbability_HalfAtMatchedDifficulty(t *testing.T) {
	for _, theta := range []float64{-3, -1.5, 0, 0.7, 3} {
		if got := Probability(theta, theta); !almostEqual(got, 0.5) {
			t.Errorf("Probability(%v, %v) = %v, want 0.5", theta, theta, got)
		}
	}
}

func TestProbability_StrictBounds(t *testing.T) {
	for _, theta := range []float64{-1e6, -100, -3, 0, 3, 100, 1e6} {
		for _, b := range []float64{-1e6, -100, -2, 0, 2, 100, 1e6} {
			p := Probability(theta, b)
			if p <= 0 || p >= 1 {
				t.Errorf("Probability(%v, %v) = %v, want strictly in (0,1)", theta, b, p)
			}
			if math.IsNaN(p) || math.IsInf(p, 0) {
				t.Errorf("Probability(%v, %v) = %v, not finite", theta, b, p)
			}
		}
	}
}

func TestProbability_MonotonicInTheta(t *testing.T) {
	const b = 0.5
	prev := Probability(-3.0, b)
	for theta := -2.9; theta <= 3.0; theta += 0.1 {
		p := Probability(theta, b)
		if p <= prev {
			t.Fatalf("Probability(%v, %v) = %v, not strictly increasing (prev %v)", theta, b, p, prev)
		}
		prev = p
	}
}

func TestProbability_KnownValue(t *testing.T) {
	// sigma(1) = 1/(1+e^-1)
	want := 1.0 / (1.0 + math.Exp(-1.0))
	if got := Probability(1.0, 0.0); !almostEqual(got, want) {
		t.Errorf("Probability(1, 0) = %v, want %v", got, want)
	}
}

func TestInformation_Bounds(t *testing.T) {
	for _, theta := range []float64{-1e6, -50, -3, 0, 3, 50, 1e6} {
		for _, b := range []float64{-1e6, -50, -2, 0, 2, 50, 1e6} {
			info := Information(theta, b)
			if info <= 0 || info > 0.25 {
				t.Errorf("Information(%v, %v) = %v, want in (0, 0.25]", theta, b, info)
			}
		}
	}
}

func TestInformation_MaxAtMatchedDifficulty(t *testing.T) {
	const theta = 0.3
	peak := Information(theta, theta)
	if !almostEqual(peak, 0.25) {
		t.Errorf("Information at b=theta = %v, want 0.25", peak)
	}
	for _, offset := range []float64{0.1, 0.5, 1, 2} {
		if Information(theta, theta+offset) >= peak {
			t.Errorf("Information(%v, %v) >= peak", theta, theta+offset)
		}
		if Information(theta, theta-offset) >= peak {
			t.Errorf("Information(%v, %v) >= peak", theta, theta-offset)
		}
	}
}

func TestInformation_SymmetricAroundTheta(t *testing.T) {
	const theta = -0.8
	for _, offset := range []float64{0.25, 1.0, 2.5} {
		above := Information(theta, theta+offset)
		below := Information(theta, theta-offset)
		if !almostEqual(above, below) {
			t.Errorf("Information not symmetric at offset %v: %v vs %v", offset, above, below)
		}
	}
}
