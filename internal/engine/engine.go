// Package engine runs one adaptive test attempt: it calibrates the item
// pool, serves maximum-information items, and keeps a Rasch ability
// estimate current after every response. One Engine instance belongs to
// exactly one attempt; embedders running concurrent sessions hold one
// engine per session and never share them.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arjndr/catena/internal/irt"
	"github.com/arjndr/catena/internal/itembank"
)

// Engine is the per-attempt state machine. No I/O happens inside: the
// pool arrives up front, elapsed times arrive from the caller, and
// persistence of the final snapshot is the host's job.
type Engine struct {
	attemptID string
	bankName  string
	pool      []itembank.Item
	est       irt.Estimator

	phase      Phase
	params     map[string]float64
	theta      float64
	responses  []Response
	used       map[string]bool
	trajectory []float64
	startedAt  time.Time
}

// New creates an engine over the bank's item pool with the given
// estimator constants. The engine starts in the not-started phase.
func New(bank *itembank.Bank, est irt.Estimator) *Engine {
	return &Engine{
		attemptID: uuid.NewString(),
		bankName:  bank.Name,
		pool:      bank.Items,
		est:       est,
		phase:     PhaseNotStarted,
		used:      make(map[string]bool),
	}
}

// AttemptID returns the UUID assigned to this attempt.
func (e *Engine) AttemptID() string { return e.attemptID }

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase { return e.phase }

// Start calibrates the pool and serves the first item. Valid only once,
// from the not-started phase.
func (e *Engine) Start() (*itembank.Item, error) {
	if e.phase != PhaseNotStarted {
		return nil, fmt.Errorf("%w: start from %s", ErrInvalidState, e.phase)
	}

	// Item parameters are fixed for the life of the attempt.
	e.params = make(map[string]float64, len(e.pool))
	for _, it := range e.pool {
		e.params[it.ID] = it.Scale()
	}

	e.theta = 0 // population-average prior
	e.trajectory = []float64{e.theta}
	e.startedAt = time.Now()
	e.phase = PhaseInProgress

	return FirstItem(e.pool), nil
}

// Record appends a response, updates the ability estimate, marks the item
// used, and returns the next item to present. A nil next item means the
// pool is exhausted; whether that completes the session is the caller's
// policy.
func (e *Engine) Record(itemID string, correct bool, elapsed time.Duration) (*itembank.Item, error) {
	if e.phase != PhaseInProgress {
		return nil, fmt.Errorf("%w: record in %s", ErrInvalidState, e.phase)
	}

	b, ok := e.params[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, itemID)
	}
	if e.used[itemID] {
		return nil, fmt.Errorf("%w: %q", ErrItemRepeated, itemID)
	}

	e.responses = append(e.responses, Response{
		ItemID:  itemID,
		Correct: correct,
		Elapsed: elapsed,
		Scale:   b,
	})
	e.used[itemID] = true

	e.theta = e.est.Update(e.theta, b, correct)
	e.trajectory = append(e.trajectory, e.theta)

	return NextItem(e.pool, e.used, e.theta), nil
}

// Finish transitions to the completed phase. The engine is read-only from
// here on.
func (e *Engine) Finish() error {
	if e.phase != PhaseInProgress {
		return fmt.Errorf("%w: finish from %s", ErrInvalidState, e.phase)
	}
	e.phase = PhaseCompleted
	return nil
}

// Theta returns the current ability estimate.
func (e *Engine) Theta() float64 { return e.theta }

// StandardError returns the measurement uncertainty of the current
// estimate, recomputed from the full response history.
func (e *Engine) StandardError() float64 {
	return e.est.StandardError(e.theta, e.recordedScales())
}

// Converged reports whether the standard error is below the acceptance
// threshold.
func (e *Engine) Converged() bool {
	return e.est.Converged(e.theta, e.recordedScales())
}

// Band returns the qualitative label for the current estimate.
func (e *Engine) Band() irt.Band {
	return irt.BandFor(e.theta)
}

// Responses returns a copy of the recorded responses in order.
func (e *Engine) Responses() []Response {
	out := make([]Response, len(e.responses))
	copy(out, e.responses)
	return out
}

// Trajectory returns the ability estimate after initialization and after
// each response, for charting.
func (e *Engine) Trajectory() []float64 {
	out := make([]float64, len(e.trajectory))
	copy(out, e.trajectory)
	return out
}

// Remaining returns how many pool items have not yet been presented.
func (e *Engine) Remaining() int {
	return len(e.pool) - len(e.used)
}

// Item returns the pool item with the given id, if present.
func (e *Engine) Item(itemID string) (*itembank.Item, bool) {
	for i := range e.pool {
		if e.pool[i].ID == itemID {
			return &e.pool[i], true
		}
	}
	return nil, false
}

func (e *Engine) recordedScales() []float64 {
	scales := make([]float64, len(e.responses))
	for i, r := range e.responses {
		scales[i] = r.Scale
	}
	return scales
}
