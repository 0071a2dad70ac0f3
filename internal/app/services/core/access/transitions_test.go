package access

import (
	"medicore-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionAppointment(t *testing.T) {
	t.Run("scheduled can complete or cancel", func(t *testing.T) {
		assert.True(t, CanTransitionAppointment(constvars.AppointmentStatusScheduled, constvars.AppointmentStatusCompleted))
		assert.True(t, CanTransitionAppointment(constvars.AppointmentStatusScheduled, constvars.AppointmentStatusCancelled))
	})

	t.Run("terminal states have no way out", func(t *testing.T) {
		for _, from := range []string{constvars.AppointmentStatusCompleted, constvars.AppointmentStatusCancelled} {
			for _, to := range []string{constvars.AppointmentStatusScheduled, constvars.AppointmentStatusCompleted, constvars.AppointmentStatusCancelled} {
				assert.False(t, CanTransitionAppointment(from, to), "%s -> %s must be rejected", from, to)
			}
		}
	})

	t.Run("unknown statuses are rejected", func(t *testing.T) {
		assert.False(t, CanTransitionAppointment("draft", constvars.AppointmentStatusCompleted))
		assert.False(t, CanTransitionAppointment(constvars.AppointmentStatusScheduled, "archived"))
	})
}
