package engine

import (
	"errors"
	"time"
)

// Phase is the engine lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseCompleted
)

// String returns the phase name for errors and logs.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseInProgress:
		return "in-progress"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// API misuse errors. Exhaustion of the pool is not an error; Record
// returns a nil next item instead.
var (
	// ErrInvalidState is returned when a mutation is attempted outside
	// the in-progress phase.
	ErrInvalidState = errors.New("engine: invalid state for operation")

	// ErrUnknownItem is returned when a response references an item id
	// not present in the calibrated pool.
	ErrUnknownItem = errors.New("engine: item not in pool")

	// ErrItemRepeated is returned when a response is recorded twice for
	// the same item. Each presented item is recorded exactly once.
	ErrItemRepeated = errors.New("engine: item already recorded")
)

// Response is one recorded answer. Scale is the item's difficulty
// parameter captured at recording time; it is never recomputed, so the
// standard error stays stable even if calibration constants change.
type Response struct {
	ItemID  string        `json:"item_id"`
	Correct bool          `json:"correct"`
	Elapsed time.Duration `json:"elapsed"`
	Scale   float64       `json:"scale"`
}
