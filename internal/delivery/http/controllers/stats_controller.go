package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Ambarubale6061/Event-Management-API/internal/delivery/http/helpers"
	"github.com/Ambarubale6061/Event-Management-API/internal/domain"
)

type StatsController struct {
	Logger  *slog.Logger
	Service domain.StatsService
}

func NewStatsController(logger *slog.Logger, svc domain.StatsService) *StatsController {
	return &StatsController{
		Logger:  logger,
		Service: svc,
	}
}

// GetEventStats godoc
// @Summary Registration statistics for an event
// @Description Returns the event title, total registrations, and remaining capacity. Remaining capacity is not clamped at zero.
// @Tags stats
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} domain.EventStats
// @Failure 404 {object} helpers.MessageResponse "Event not found"
// @Failure 500 {object} helpers.MessageResponse
// @Router /events/{eventID}/stats [get]
func (c *StatsController) GetEventStats(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "eventID")
	if !ok {
		helpers.WriteMessage(w, http.StatusNotFound, "Event not found")
		return
	}

	stats, err := c.Service.GetEventStats(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteMessage(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.Error("event stats", "event_id", eventID, "error", err)
		helpers.WriteServerError(w)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, stats)
}
