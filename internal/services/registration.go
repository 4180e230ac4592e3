package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Ambarubale6061/Event-Management-API/internal/domain"
	"github.com/Ambarubale6061/Event-Management-API/internal/metrics"
)

type registrationService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	emailService     domain.EmailService
	metrics          *metrics.Metrics
	contextTimeout   time.Duration
}

// NewRegistrationService creates a RegistrationService with the given
// repositories and email service.
func NewRegistrationService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	emailService domain.EmailService,
	m *metrics.Metrics,
	timeout time.Duration,
) domain.RegistrationService {
	return &registrationService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		emailService:     emailService,
		metrics:          m,
		contextTimeout:   timeout,
	}
}

func (s *registrationService) Register(ctx context.Context, eventID int64, userID, notifyEmail string) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	// The repository re-checks existence, duplicates, and capacity inside a
	// single transaction holding the event row lock, so the decision made
	// here cannot go stale between check and insert.
	reg, err := s.registrationRepo.Register(ctx, eventID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound),
			errors.Is(err, domain.ErrAlreadyRegistered):
			return nil, err
		case errors.Is(err, domain.ErrEventFull):
			s.metrics.IncrementRegistrationsRejected()
			return nil, err
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}
	s.metrics.IncrementRegistrationsCreated()

	// Confirmation mail is best-effort; the registration is already durable.
	if notifyEmail != "" {
		data := &domain.RegistrationConfirmationEmailData{
			Email:          notifyEmail,
			UserID:         userID,
			EventTitle:     event.Title,
			EventStartTime: event.StartTime,
			EventLocation:  event.Location,
		}
		if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
			log.Printf("[EMAIL] Failed to send registration confirmation to %s: %v", notifyEmail, err)
		}
	}

	return reg, nil
}

func (s *registrationService) Cancel(ctx context.Context, eventID int64, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.registrationRepo.Delete(ctx, eventID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete registration: %w", err)
	}
	return nil
}
