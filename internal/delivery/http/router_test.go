package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Ambarubale6061/Event-Management-API/internal/delivery/http/controllers"
	"github.com/Ambarubale6061/Event-Management-API/internal/domain"
)

// memoryStore is a stateful in-memory implementation of the three services,
// guarded by a mutex the way the real store serializes on the event row.
// It lets the full HTTP surface be exercised without a database.
type memoryStore struct {
	mu          sync.Mutex
	nextEventID int64
	nextRegID   int64
	events      map[int64]*domain.Event
	regs        map[int64]map[string]*domain.Registration
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		events: make(map[int64]*domain.Event),
		regs:   make(map[int64]map[string]*domain.Registration),
	}
}

func (s *memoryStore) CreateEvent(ctx context.Context, event *domain.Event) error {
	if event.Title == "" || event.Location == "" || event.StartTime.IsZero() || event.Capacity < 1 {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextEventID++
	event.ID = s.nextEventID
	s.events[event.ID] = event
	s.regs[event.ID] = make(map[string]*domain.Registration)
	return nil
}

func (s *memoryStore) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Event, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev)
	}
	return out, nil
}

func (s *memoryStore) Register(ctx context.Context, eventID int64, userID, notifyEmail string) (*domain.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.events[eventID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if _, ok := s.regs[eventID][userID]; ok {
		return nil, domain.ErrAlreadyRegistered
	}
	if len(s.regs[eventID]) >= ev.Capacity {
		return nil, domain.ErrEventFull
	}
	s.nextRegID++
	reg := &domain.Registration{ID: s.nextRegID, UserID: userID, EventID: eventID}
	s.regs[eventID][userID] = reg
	return reg, nil
}

func (s *memoryStore) Cancel(ctx context.Context, eventID int64, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.regs[eventID][userID]; !ok {
		return domain.ErrNotFound
	}
	delete(s.regs[eventID], userID)
	return nil
}

func (s *memoryStore) GetEventStats(ctx context.Context, eventID int64) (*domain.EventStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.events[eventID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	total := len(s.regs[eventID])
	return &domain.EventStats{
		EventTitle:         ev.Title,
		TotalRegistrations: total,
		RemainingCapacity:  ev.Capacity - total,
	}, nil
}

func newTestRouter(store *memoryStore) *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewRouter(
		controllers.NewEventController(logger, store),
		controllers.NewRegistrationController(logger, store),
		controllers.NewStatsController(logger, store),
	)
}

func doJSON(t *testing.T, router *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_Liveness(t *testing.T) {
	router := newTestRouter(newMemoryStore())

	w := doJSON(t, router, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != "Event Management API is running!" {
		t.Fatalf("unexpected body %q", got)
	}
}

// TestRouter_FullCapacityScenario walks the whole lifecycle: create a
// one-seat event, fill it, get rejected, read the stats, cancel, re-register.
func TestRouter_FullCapacityScenario(t *testing.T) {
	router := newTestRouter(newMemoryStore())

	w := doJSON(t, router, http.MethodPost, "/events",
		`{"title":"Launch","start_time":"2025-01-01T10:00:00Z","location":"HQ","capacity":1}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create event: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		Message string        `json:"message"`
		Event   *domain.Event `json:"event"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal create response: %v", err)
	}
	if created.Message != "Event created" || created.Event.ID == 0 {
		t.Fatalf("unexpected create response: %+v", created)
	}
	eventPath := fmt.Sprintf("/events/%d", created.Event.ID)

	w = doJSON(t, router, http.MethodPost, eventPath+"/register", `{"user_id":"u1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("first registration: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, eventPath+"/register", `{"user_id":"u2"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("second registration: expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Event full") {
		t.Fatalf("expected Event full, got %s", w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, eventPath+"/register", `{"user_id":"u1"}`)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "Already registered") {
		t.Fatalf("duplicate registration: expected 400 Already registered, got %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, eventPath+"/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("stats: expected 200, got %d", w.Code)
	}
	var stats domain.EventStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("unmarshal stats: %v", err)
	}
	if stats.EventTitle != "Launch" || stats.TotalRegistrations != 1 || stats.RemainingCapacity != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	w = doJSON(t, router, http.MethodDelete, eventPath+"/registrations/u1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("cancel: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodDelete, eventPath+"/registrations/u1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("repeat cancel: expected 404, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, eventPath+"/register", `{"user_id":"u2"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("registration after cancel: expected 201, got %d", w.Code)
	}
}

// TestRouter_ConcurrentRegistrations fires many concurrent registrations at a
// small event and verifies the capacity invariant holds end to end.
func TestRouter_ConcurrentRegistrations(t *testing.T) {
	store := newMemoryStore()
	router := newTestRouter(store)

	w := doJSON(t, router, http.MethodPost, "/events",
		`{"title":"GopherCon","start_time":"2025-09-01T09:00:00Z","location":"Berlin","capacity":5}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create event: expected 201, got %d", w.Code)
	}

	const attempts = 100
	const capacity = 5
	var success, full int32

	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(n int) {
			defer wg.Done()
			body := fmt.Sprintf(`{"user_id":"gopher-%d"}`, n)
			req := httptest.NewRequest(http.MethodPost, "/events/1/register", strings.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			switch rec.Code {
			case http.StatusCreated:
				atomic.AddInt32(&success, 1)
			case http.StatusBadRequest:
				atomic.AddInt32(&full, 1)
			default:
				t.Errorf("unexpected status %d: %s", rec.Code, rec.Body.String())
			}
		}(i)
	}
	wg.Wait()

	if success != capacity {
		t.Fatalf("expected exactly %d successes, got %d", capacity, success)
	}
	if full != attempts-capacity {
		t.Fatalf("expected %d rejections, got %d", attempts-capacity, full)
	}

	w = doJSON(t, router, http.MethodGet, "/events/1/stats", "")
	var stats domain.EventStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("unmarshal stats: %v", err)
	}
	if stats.TotalRegistrations != capacity || stats.RemainingCapacity != 0 {
		t.Fatalf("capacity invariant violated: %+v", stats)
	}
}
