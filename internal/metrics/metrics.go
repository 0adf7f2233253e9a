package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "barbershop"

// Resultados possíveis de uma tentativa de agendamento.
const (
	ResultBooked          = "booked"
	ResultValidation      = "validation_error"
	ResultSlotUnavailable = "slot_unavailable"
	ResultPersistence     = "persistence_error"
)

var (
	once sync.Once

	bookings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Booking attempts by result.",
		},
		[]string{"result"},
	)

	registrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "User registrations by result.",
		},
		[]string{"result"},
	)

	rateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		},
		[]string{"route"},
	)
)

// Register registra os coletores no registry padrão. Pode ser chamado várias vezes.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookings, registrations, rateLimited)
	})
}

func IncBooking(result string) {
	bookings.WithLabelValues(result).Inc()
}

func IncRegistration(result string) {
	registrations.WithLabelValues(result).Inc()
}

func IncRateLimited(route string) {
	rateLimited.WithLabelValues(route).Inc()
}
