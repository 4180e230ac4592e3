package domain

import (
	"context"
	"errors"
)

// ErrAlreadyRegistered is returned when the (user, event) pair already has a registration.
var ErrAlreadyRegistered = errors.New("already registered")

// ErrEventFull is returned when an event has no remaining capacity.
var ErrEventFull = errors.New("event full")

// Registration binds an opaque user identifier to an event. At most one
// registration exists per (user_id, event_id) pair, and an event never holds
// more registrations than its capacity.
// swagger:model Registration
type Registration struct {
	ID      int64  `json:"id"`
	UserID  string `json:"user_id"`
	EventID int64  `json:"event_id"`
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	// Register atomically creates a registration for the event. The capacity
	// and duplicate checks and the insert run in a single transaction that
	// serializes on the event row, so concurrent registrations cannot push an
	// event past its capacity. Returns ErrNotFound when the event does not
	// exist, ErrAlreadyRegistered for a duplicate pair, and ErrEventFull when
	// the event is at capacity.
	Register(ctx context.Context, eventID int64, userID string) (*Registration, error)
	// Delete removes the registration matching both identifiers.
	// Returns ErrNotFound when no row was deleted.
	Delete(ctx context.Context, eventID int64, userID string) error
	CountByEventID(ctx context.Context, eventID int64) (int, error)
}

// RegistrationService owns attendee registration and cancellation.
type RegistrationService interface {
	// Register registers userID for the event. notifyEmail, when non-empty,
	// receives a best-effort confirmation email; a mail failure never fails
	// the registration.
	Register(ctx context.Context, eventID int64, userID, notifyEmail string) (*Registration, error)
	Cancel(ctx context.Context, eventID int64, userID string) error
}

// EventStats reports live registration numbers for an event.
// RemainingCapacity is capacity minus total registrations, not clamped.
// swagger:model EventStats
type EventStats struct {
	EventTitle         string `json:"event_title"`
	TotalRegistrations int    `json:"total_registrations"`
	RemainingCapacity  int    `json:"remaining_capacity"`
}

// StatsService derives registration statistics.
type StatsService interface {
	// GetEventStats returns ErrNotFound when the event does not exist.
	GetEventStats(ctx context.Context, eventID int64) (*EventStats, error)
}
