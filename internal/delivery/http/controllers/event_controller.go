package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Ambarubale6061/Event-Management-API/internal/delivery/http/helpers"
	"github.com/Ambarubale6061/Event-Management-API/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEventRequest is the body for POST /events.
// swagger:model CreateEventRequest
type CreateEventRequest struct {
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	Location  string    `json:"location"`
	Capacity  int       `json:"capacity"`
}

// Validate reports all four fields as one violation, matching the API's
// historical "All fields required" answer. Capacity below one counts as
// missing.
func (r *CreateEventRequest) Validate() string {
	if r.Title == "" || r.Location == "" || r.StartTime.IsZero() || r.Capacity < 1 {
		return "All fields required"
	}
	return ""
}

// CreateEventResponse is the 201 body for POST /events.
// swagger:model CreateEventResponse
type CreateEventResponse struct {
	Message string        `json:"message"`
	Event   *domain.Event `json:"event"`
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event with a title, start time, location, and positive capacity.
// @Tags events
// @Accept json
// @Produce json
// @Param request body controllers.CreateEventRequest true "Event fields"
// @Success 201 {object} controllers.CreateEventResponse
// @Failure 400 {object} helpers.MessageResponse "All fields required"
// @Failure 500 {object} helpers.MessageResponse
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	event := &domain.Event{
		Title:     req.Title,
		StartTime: req.StartTime,
		Location:  req.Location,
		Capacity:  req.Capacity,
	}
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteMessage(w, http.StatusBadRequest, "All fields required")
			return
		}
		c.Logger.Error("create event", "error", err)
		helpers.WriteServerError(w)
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, CreateEventResponse{
		Message: "Event created",
		Event:   event,
	})
}

// ListEvents godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {array} domain.Event
// @Failure 500 {object} helpers.MessageResponse
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.Error("list events", "error", err)
		helpers.WriteServerError(w)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}
