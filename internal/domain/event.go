package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput is returned when a request is missing required fields.
var ErrInvalidInput = errors.New("invalid input")

// Event is a schedulable activity with a bounded attendee capacity.
// Events are immutable once created.
// swagger:model Event
type Event struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	Location  string    `json:"location"`
	Capacity  int       `json:"capacity"`
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
}

// EventService defines event creation and listing.
type EventService interface {
	// CreateEvent validates the event and persists it. The store-assigned ID
	// is written back to the given Event. Returns ErrInvalidInput when title,
	// location, or start_time is missing, or capacity is below one.
	CreateEvent(ctx context.Context, event *Event) error
	ListEvents(ctx context.Context) ([]*Event, error)
}
