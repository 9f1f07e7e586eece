// README: Itinerary job store backed by PostgreSQL.
package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists itinerary jobs. Reads go through the read pool (public
// status credential); inserts and updates go through the write pool
// (orchestrator credential). The store itself enforces which credential may
// perform which operation.
type Store struct {
	read  *pgxpool.Pool
	write *pgxpool.Pool
}

func NewStore(read, write *pgxpool.Pool) *Store {
	return &Store{read: read, write: write}
}

func (s *Store) Create(ctx context.Context, j *Job) error {
	_, err := s.write.Exec(ctx, `
		INSERT INTO itinerary_jobs (
			job_id, status, destination, duration_days, resolved_location, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)`,
		j.ID,
		string(j.Status),
		j.Destination,
		j.DurationDays,
		j.ResolvedLocation,
		j.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*Job, error) {
	row := s.read.QueryRow(ctx, `
		SELECT job_id, status, destination, duration_days, resolved_location,
		       created_at, completed_at, itinerary, error
		FROM itinerary_jobs
		WHERE job_id = $1`, id,
	)

	var j Job
	var itineraryRaw []byte
	err := row.Scan(
		&j.ID, &j.Status, &j.Destination, &j.DurationDays, &j.ResolvedLocation,
		&j.CreatedAt, &j.CompletedAt, &itineraryRaw, &j.Error,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if itineraryRaw != nil {
		if err := json.Unmarshal(itineraryRaw, &j.Itinerary); err != nil {
			return nil, fmt.Errorf("decode stored itinerary: %w", err)
		}
	}
	return &j, nil
}

// SetResolvedLocation records the geocoded destination. Best-effort metadata;
// it never touches status.
func (s *Store) SetResolvedLocation(ctx context.Context, id uuid.UUID, resolved string) error {
	_, err := s.write.Exec(ctx, `
		UPDATE itinerary_jobs SET resolved_location = $2 WHERE job_id = $1`,
		id, resolved,
	)
	return err
}

// SetCompleted moves a processing job to completed with its itinerary.
// The status guard in WHERE keeps the transition monotonic: a job that
// already reached a terminal state is never rewritten.
func (s *Store) SetCompleted(ctx context.Context, id uuid.UUID, plan []DayPlan, completedAt time.Time) error {
	encoded, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encode itinerary: %w", err)
	}
	tag, err := s.write.Exec(ctx, `
		UPDATE itinerary_jobs
		SET status = $2, itinerary = $3, completed_at = $4
		WHERE job_id = $1 AND status = $5`,
		id, string(StatusCompleted), encoded, completedAt, string(StatusProcessing),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s is not in processing state", id)
	}
	return nil
}

// SetFailed moves a processing job to failed with the triggering error text.
func (s *Store) SetFailed(ctx context.Context, id uuid.UUID, errMsg string, completedAt time.Time) error {
	tag, err := s.write.Exec(ctx, `
		UPDATE itinerary_jobs
		SET status = $2, error = $3, completed_at = $4
		WHERE job_id = $1 AND status = $5`,
		id, string(StatusFailed), errMsg, completedAt, string(StatusProcessing),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s is not in processing state", id)
	}
	return nil
}
