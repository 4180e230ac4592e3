package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Ambarubale6061/Event-Management-API/internal/delivery/http/helpers"
	"github.com/Ambarubale6061/Event-Management-API/internal/domain"
)

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterRequest is the body for POST /events/{eventID}/register.
// Email is optional; when present, a confirmation email is sent best-effort.
// swagger:model RegisterRequest
type RegisterRequest struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

func (r *RegisterRequest) Validate() string {
	if r.UserID == "" {
		return "user_id is required"
	}
	return ""
}

// RegisterResponse is the 201 body for POST /events/{eventID}/register.
// swagger:model RegisterResponse
type RegisterResponse struct {
	Message string               `json:"message"`
	Data    *domain.Registration `json:"data"`
}

// Register godoc
// @Summary Register a user for an event
// @Description Registers user_id for the event. A user may register at most once per event, and an event never accepts more registrations than its capacity.
// @Tags registrations
// @Accept json
// @Produce json
// @Param eventID path int true "Event ID"
// @Param request body controllers.RegisterRequest true "Registration fields"
// @Success 201 {object} controllers.RegisterResponse
// @Failure 400 {object} helpers.MessageResponse "Already registered / Event full / missing user_id"
// @Failure 404 {object} helpers.MessageResponse "Event not found"
// @Failure 500 {object} helpers.MessageResponse
// @Router /events/{eventID}/register [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "eventID")
	if !ok {
		helpers.WriteMessage(w, http.StatusNotFound, "Event not found")
		return
	}

	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	reg, err := c.Service.Register(r.Context(), eventID, req.UserID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteMessage(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			helpers.WriteMessage(w, http.StatusBadRequest, "Already registered")
		case errors.Is(err, domain.ErrEventFull):
			helpers.WriteMessage(w, http.StatusBadRequest, "Event full")
		default:
			c.Logger.Error("register", "event_id", eventID, "error", err)
			helpers.WriteServerError(w)
		}
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, RegisterResponse{
		Message: "Registered successfully",
		Data:    reg,
	})
}

// Cancel godoc
// @Summary Cancel a registration
// @Description Deletes the registration matching both identifiers.
// @Tags registrations
// @Produce json
// @Param eventID path int true "Event ID"
// @Param userID path string true "User ID"
// @Success 200 {object} helpers.MessageResponse "Registration cancelled"
// @Failure 404 {object} helpers.MessageResponse "Registration not found"
// @Failure 500 {object} helpers.MessageResponse
// @Router /events/{eventID}/registrations/{userID} [delete]
func (c *RegistrationController) Cancel(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "eventID")
	userID := r.PathValue("userID")
	if !ok || userID == "" {
		helpers.WriteMessage(w, http.StatusNotFound, "Registration not found")
		return
	}

	if err := c.Service.Cancel(r.Context(), eventID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteMessage(w, http.StatusNotFound, "Registration not found")
			return
		}
		c.Logger.Error("cancel registration", "event_id", eventID, "error", err)
		helpers.WriteServerError(w)
		return
	}

	helpers.WriteMessage(w, http.StatusOK, "Registration cancelled")
}
