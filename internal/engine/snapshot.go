package engine

import "time"

// Snapshot is the final attempt record the host persists at finish time.
// The engine itself holds no state past the attempt; this is the hand-off.
type Snapshot struct {
	AttemptID     string     `json:"attempt_id"`
	Bank          string     `json:"bank"`
	StartedAt     time.Time  `json:"started_at"`
	Theta         float64    `json:"theta"`
	StandardError float64    `json:"standard_error"`
	Converged     bool       `json:"converged"`
	Band          string     `json:"band"`
	Responses     []Response `json:"responses"`
	Trajectory    []float64  `json:"trajectory"`
}

// Snapshot exports the attempt for persistence.
func (e *Engine) Snapshot() *Snapshot {
	return &Snapshot{
		AttemptID:     e.attemptID,
		Bank:          e.bankName,
		StartedAt:     e.startedAt,
		Theta:         e.theta,
		StandardError: e.StandardError(),
		Converged:     e.Converged(),
		Band:          string(e.Band()),
		Responses:     e.Responses(),
		Trajectory:    e.Trajectory(),
	}
}
