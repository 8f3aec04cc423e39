package irt

import "math"

const (
	// DefaultLearningRate is the per-response correction step. Larger
	// values converge faster but overshoot more on noisy early responses.
	DefaultLearningRate = 0.4

	// DefaultAbilityBound clamps the ability estimate to
	// [-DefaultAbilityBound, +DefaultAbilityBound].
	DefaultAbilityBound = 3.0

	// DefaultSEThreshold is the standard error below which the estimate
	// is considered converged.
	DefaultSEThreshold = 0.3
)

// Estimator applies the single-step gradient correction to a running
// ability estimate. It is stateless; callers own the estimate and the
// response history.
type Estimator struct {
	// LearningRate is the correction step alpha.
	LearningRate float64

	// AbilityBound caps |theta| after every update.
	AbilityBound float64

	// SEThreshold is the convergence cutoff for the standard error.
	SEThreshold float64
}

// NewEstimator returns an Estimator with the standard constants.
func NewEstimator() Estimator {
	return Estimator{
		LearningRate: DefaultLearningRate,
		AbilityBound: DefaultAbilityBound,
		SEThreshold:  DefaultSEThreshold,
	}
}

// Update returns the ability estimate after observing one response to an
// item of difficulty b: theta + alpha*(r - p), clamped to the ability
// bound. Total; never NaN or Inf.
func (e Estimator) Update(theta, b float64, correct bool) float64 {
	p := Probability(theta, b)

	r := 0.0
	if correct {
		r = 1.0
	}

	next := theta + e.LearningRate*(r-p)

	if next > e.AbilityBound {
		next = e.AbilityBound
	}
	if next < -e.AbilityBound {
		next = -e.AbilityBound
	}
	return next
}

// StandardError returns 1/sqrt(sum of Information(theta, b_i)) over the
// recorded item difficulties. Recomputed from the full history on every
// call; an incrementally patched running value would drift as theta moves.
// Returns +Inf for an empty history.
func (e Estimator) StandardError(theta float64, recorded []float64) float64 {
	total := 0.0
	for _, b := range recorded {
		total += Information(theta, b)
	}
	if total == 0 {
		return math.Inf(1)
	}
	return 1.0 / math.Sqrt(total)
}

// Converged reports whether the standard error has dropped below the
// threshold.
func (e Estimator) Converged(theta float64, recorded []float64) bool {
	return e.StandardError(theta, recorded) < e.SEThreshold
}
