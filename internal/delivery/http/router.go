package http

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Ambarubale6061/Event-Management-API/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	eventController *controllers.EventController,
	registrationController *controllers.RegistrationController,
	statsController *controllers.StatsController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Liveness
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, "Event Management API is running!")
	})

	// API Routes
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("POST /events/{eventID}/register", registrationController.Register)
	mux.HandleFunc("DELETE /events/{eventID}/registrations/{userID}", registrationController.Cancel)
	mux.HandleFunc("GET /events/{eventID}/stats", statsController.GetEventStats)

	// Observability & docs
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
