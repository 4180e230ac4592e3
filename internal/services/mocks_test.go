package services

import (
	"context"
	"time"

	"github.com/Ambarubale6061/Event-Management-API/internal/domain"
	"github.com/Ambarubale6061/Event-Management-API/internal/metrics"
)

// Metrics register on the default prometheus registry, so the package shares
// one instance across tests.
var testMetrics = metrics.New()

const testTimeout = 2 * time.Second

type mockEventRepository struct {
	events    map[int64]*domain.Event
	listErr   error
	createErr error
	nextID    int64
	created   []*domain.Event
}

func (m *mockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	event.ID = m.nextID
	m.created = append(m.created, event)
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	ev, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (m *mockEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*domain.Event, 0, len(m.events))
	for _, ev := range m.events {
		out = append(out, ev)
	}
	return out, nil
}

type mockRegistrationRepository struct {
	registerErr    error
	registerResult *domain.Registration
	deleteErr      error
	count          int
	countErr       error

	lastRegisterEventID int64
	lastRegisterUserID  string
	lastDeleteEventID   int64
	lastDeleteUserID    string
}

func (m *mockRegistrationRepository) Register(ctx context.Context, eventID int64, userID string) (*domain.Registration, error) {
	m.lastRegisterEventID = eventID
	m.lastRegisterUserID = userID
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	if m.registerResult != nil {
		return m.registerResult, nil
	}
	return &domain.Registration{ID: 1, UserID: userID, EventID: eventID}, nil
}

func (m *mockRegistrationRepository) Delete(ctx context.Context, eventID int64, userID string) error {
	m.lastDeleteEventID = eventID
	m.lastDeleteUserID = userID
	return m.deleteErr
}

func (m *mockRegistrationRepository) CountByEventID(ctx context.Context, eventID int64) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.count, nil
}

type mockEmailService struct {
	err  error
	sent []*domain.RegistrationConfirmationEmailData
}

func (m *mockEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	m.sent = append(m.sent, data)
	return m.err
}
