// README: Job orchestration: insert, generate, parse, finalize.
package itinerary

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/nikbakhtenb4/task-stak-travel/internal/ai"
)

// JobStore is the persistence contract the orchestrator drives. *Store is the
// production implementation.
type JobStore interface {
	Create(ctx context.Context, j *Job) error
	Get(ctx context.Context, id uuid.UUID) (*Job, error)
	SetResolvedLocation(ctx context.Context, id uuid.UUID, resolved string) error
	SetCompleted(ctx context.Context, id uuid.UUID, plan []DayPlan, completedAt time.Time) error
	SetFailed(ctx context.Context, id uuid.UUID, errMsg string, completedAt time.Time) error
}

// Geocoder resolves a free-form destination to a canonical address.
type Geocoder interface {
	Resolve(ctx context.Context, destination string) (string, error)
}

// Service drives itinerary jobs end-to-end. Each accepted request gets one
// detached background task with no external re-entry and no retries.
type Service struct {
	store    JobStore
	provider ai.CompletionProvider
	geocoder Geocoder // optional, may be nil
}

func NewService(store JobStore, provider ai.CompletionProvider, geocoder Geocoder) *Service {
	return &Service{store: store, provider: provider, geocoder: geocoder}
}

// Submit accepts a validated request and returns the new job id immediately.
// Generation runs in the background; the outcome is only observable through
// Get. The caller never joins the spawned task.
func (s *Service) Submit(destination string, durationDays int) uuid.UUID {
	job := &Job{
		ID:           uuid.New(),
		Status:       StatusProcessing,
		Destination:  destination,
		DurationDays: durationDays,
		CreatedAt:    time.Now().UTC(),
	}
	go s.run(job)
	return job.ID
}

// Get returns the current job record.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Job, error) {
	return s.store.Get(ctx, id)
}

// run is the per-job state machine: insert -> generate -> parse -> finalize.
// Store calls carry no caller-imposed timeout; only the completion call is
// bounded (inside the provider).
func (s *Service) run(job *Job) {
	ctx := context.Background()

	if err := s.store.Create(ctx, job); err != nil {
		// No record exists, so there is no status to report the failure to.
		log.Printf("job %s: insert failed, job lost: %v", job.ID, err)
		return
	}

	destination := job.Destination
	if s.geocoder != nil {
		resolved, err := s.geocoder.Resolve(ctx, job.Destination)
		switch {
		case err != nil:
			log.Printf("job %s: geocode %q failed: %v", job.ID, job.Destination, err)
		case resolved != "":
			destination = resolved
			if err := s.store.SetResolvedLocation(ctx, job.ID, resolved); err != nil {
				log.Printf("job %s: record resolved location: %v", job.ID, err)
			}
		}
	}

	raw, err := s.provider.Complete(ctx, BuildPrompt(destination, job.DurationDays))
	if err != nil {
		s.fail(ctx, job.ID, err)
		return
	}

	plan, err := ParseItinerary(raw)
	if err != nil {
		s.fail(ctx, job.ID, err)
		return
	}

	if err := s.store.SetCompleted(ctx, job.ID, plan, time.Now().UTC()); err != nil {
		// Known gap: the job stays in processing forever. No reconciliation
		// sweep exists.
		log.Printf("job %s: completion update failed, job stuck in processing: %v", job.ID, err)
	}
}

func (s *Service) fail(ctx context.Context, id uuid.UUID, cause error) {
	if err := s.store.SetFailed(ctx, id, cause.Error(), time.Now().UTC()); err != nil {
		log.Printf("job %s: failure update failed, job stuck in processing: %v", id, err)
	}
}
