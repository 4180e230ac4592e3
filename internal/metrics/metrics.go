package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	EventsCreated         prometheus.Counter
	RegistrationsCreated  prometheus.Counter
	RegistrationsRejected prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		EventsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "event_api_events_created_total",
			Help: "Total number of events created",
		}),
		RegistrationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "event_api_registrations_created_total",
			Help: "Total number of registrations created",
		}),
		RegistrationsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "event_api_registrations_rejected_total",
			Help: "Total number of registrations rejected because the event was full",
		}),
	}
}

// IncrementEventsCreated increments the events created counter by 1.
func (m *Metrics) IncrementEventsCreated() {
	m.EventsCreated.Inc()
}

// IncrementRegistrationsCreated increments the registrations created counter by 1.
func (m *Metrics) IncrementRegistrationsCreated() {
	m.RegistrationsCreated.Inc()
}

// IncrementRegistrationsRejected increments the capacity rejection counter by 1.
func (m *Metrics) IncrementRegistrationsRejected() {
	m.RegistrationsRejected.Inc()
}
