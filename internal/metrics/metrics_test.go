package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegisterIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(bookings.WithLabelValues(ResultBooked))
	IncBooking(ResultBooked)
	assert.Equal(t, before+1, testutil.ToFloat64(bookings.WithLabelValues(ResultBooked)))

	before = testutil.ToFloat64(registrations.WithLabelValues("duplicate_email"))
	IncRegistration("duplicate_email")
	assert.Equal(t, before+1, testutil.ToFloat64(registrations.WithLabelValues("duplicate_email")))

	before = testutil.ToFloat64(rateLimited.WithLabelValues("/api/public/appointments"))
	IncRateLimited("/api/public/appointments")
	assert.Equal(t, before+1, testutil.ToFloat64(rateLimited.WithLabelValues("/api/public/appointments")))
}
