// Package irt implements the one-parameter logistic (Rasch) response model
// and the running ability estimate built on it. Ability and item difficulty
// share one scale; all functions here are pure.
package irt

import "math"

// maxExponent bounds the sigmoid exponent. exp(-36) ≈ 2.3e-16 is still
// above one ulp at 1.0, so after clamping both 1/(1+e) and e/(1+e) stay
// strictly inside (0, 1) in float64. A larger bound would let the sigmoid
// round to exactly 0 or 1 and zero out the information.
const maxExponent = 36.0

// Probability returns the chance a test-taker of ability theta answers an
// item of difficulty b correctly: sigma(theta - b). Always strictly inside
// (0, 1), stable for extreme theta - b.
func Probability(theta, b float64) float64 {
	x := theta - b
	if x > maxExponent {
		x = maxExponent
	} else if x < -maxExponent {
		x = -maxExponent
	}

	// Evaluate with the sign-appropriate form so the exponential argument
	// is never positive.
	if x >= 0 {
		e := math.Exp(-x)
		return 1.0 / (1.0 + e)
	}
	e := math.Exp(x)
	return e / (1.0 + e)
}

// Information returns the Fisher information an item of difficulty b
// carries at ability theta: p(1-p). In (0, 0.25], maximal when b equals
// theta.
func Information(theta, b float64) float64 {
	p := Probability(theta, b)
	return p * (1.0 - p)
}
