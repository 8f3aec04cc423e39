package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/arjndr/catena/internal/engine"
)

// AttemptRecord is one persisted attempt row.
type AttemptRecord struct {
	ID             int64
	AttemptID      string
	Bank           string
	StartedAt      time.Time
	FinishedAt     time.Time
	Theta          float64
	StandardError  float64 // +Inf when the attempt recorded no responses
	Converged      bool
	Band           string
	TotalResponses int
	CorrectCount   int
	Responses      []engine.Response
	Trajectory     []float64
}

// AttemptRepo persists attempt snapshots.
type AttemptRepo interface {
	// Save stores a finished attempt snapshot.
	Save(ctx context.Context, snap *engine.Snapshot) error

	// Recent returns the most recently finished attempts, newest first.
	Recent(ctx context.Context, limit int) ([]AttemptRecord, error)
}

type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Save(ctx context.Context, snap *engine.Snapshot) error {
	responses, err := json.Marshal(snap.Responses)
	if err != nil {
		return fmt.Errorf("marshal responses: %w", err)
	}
	trajectory, err := json.Marshal(snap.Trajectory)
	if err != nil {
		return fmt.Errorf("marshal trajectory: %w", err)
	}

	correct := 0
	for _, resp := range snap.Responses {
		if resp.Correct {
			correct++
		}
	}

	// SQLite has no representation for +Inf via the driver; an attempt
	// with no responses stores NULL instead.
	se := sql.NullFloat64{Float64: snap.StandardError, Valid: !math.IsInf(snap.StandardError, 0)}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO attempts (
			attempt_id, bank, started_at, finished_at, theta,
			standard_error, converged, band, total_responses,
			correct_count, responses, trajectory
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		snap.AttemptID, snap.Bank, snap.StartedAt, time.Now(), snap.Theta,
		se, snap.Converged, snap.Band, len(snap.Responses),
		correct, string(responses), string(trajectory),
	)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]AttemptRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, attempt_id, bank, started_at, finished_at, theta,
		       standard_error, converged, band, total_responses,
		       correct_count, responses, trajectory
		FROM attempts
		ORDER BY finished_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var records []AttemptRecord
	for rows.Next() {
		var (
			rec            AttemptRecord
			se             sql.NullFloat64
			responsesJSON  string
			trajectoryJSON string
		)
		err := rows.Scan(
			&rec.ID, &rec.AttemptID, &rec.Bank, &rec.StartedAt, &rec.FinishedAt,
			&rec.Theta, &se, &rec.Converged, &rec.Band, &rec.TotalResponses,
			&rec.CorrectCount, &responsesJSON, &trajectoryJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}

		rec.StandardError = math.Inf(1)
		if se.Valid {
			rec.StandardError = se.Float64
		}
		if err := json.Unmarshal([]byte(responsesJSON), &rec.Responses); err != nil {
			return nil, fmt.Errorf("decode responses for %s: %w", rec.AttemptID, err)
		}
		if err := json.Unmarshal([]byte(trajectoryJSON), &rec.Trajectory); err != nil {
			return nil, fmt.Errorf("decode trajectory for %s: %w", rec.AttemptID, err)
		}

		records = append(records, rec)
	}
	return records, rows.Err()
}
