package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ambarubale6061/Event-Management-API/internal/domain"
)

type statsService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	contextTimeout   time.Duration
}

func NewStatsService(eventRepo domain.EventRepository, registrationRepo domain.RegistrationRepository, timeout time.Duration) domain.StatsService {
	return &statsService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		contextTimeout:   timeout,
	}
}

func (s *statsService) GetEventStats(ctx context.Context, eventID int64) (*domain.EventStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	total, err := s.registrationRepo.CountByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}

	// Remaining capacity is reported as-is, even if negative. A negative
	// number means the capacity invariant was violated at some point and
	// hiding it would mask the damage.
	return &domain.EventStats{
		EventTitle:         event.Title,
		TotalRegistrations: total,
		RemainingCapacity:  event.Capacity - total,
	}, nil
}
