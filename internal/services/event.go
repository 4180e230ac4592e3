package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Ambarubale6061/Event-Management-API/internal/domain"
	"github.com/Ambarubale6061/Event-Management-API/internal/metrics"
)

type eventService struct {
	eventRepo      domain.EventRepository
	metrics        *metrics.Metrics
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, m *metrics.Metrics, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		metrics:        m,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// Zero capacity is rejected on purpose: an event nobody can attend is
	// treated as a missing field, same as the other three.
	if event.Title == "" || event.Location == "" || event.StartTime.IsZero() || event.Capacity < 1 {
		return domain.ErrInvalidInput
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	s.metrics.IncrementEventsCreated()
	return nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}
