// README: Itinerary job aggregate and status definitions.
package itinerary

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// ErrNotFound is returned when no job exists for the given id.
var ErrNotFound = errors.New("job not found")

// Job is one itinerary-generation request tracked through its lifecycle.
// Status moves exactly once from processing to a terminal state; destination
// and duration are immutable after creation, and there is no delete.
type Job struct {
	ID           uuid.UUID `json:"job_id"`
	Status       Status    `json:"status"`
	Destination  string    `json:"destination"`
	DurationDays int       `json:"duration_days"`

	// ResolvedLocation is the geocoded form of Destination, when a maps key
	// is configured and the lookup succeeded.
	ResolvedLocation *string `json:"resolved_location"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`

	// Itinerary is present iff Status is completed; Error iff failed.
	Itinerary []DayPlan `json:"itinerary"`
	Error     *string   `json:"error"`
}

// DayPlan is one day of a generated itinerary. Day numbers are unique within
// a job and define display order.
type DayPlan struct {
	Day        int        `json:"day"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

// Activity is a single entry within a day, conventionally one of
// Morning/Afternoon/Evening.
type Activity struct {
	Time        string `json:"time"`
	Description string `json:"description"`
	Location    string `json:"location"`
}
