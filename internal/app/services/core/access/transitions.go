package access

import "medicore-service/internal/pkg/constvars"

// appointmentTransitions lists the allowed status changes. Completed and
// cancelled are terminal; no role is offered a way back to scheduled.
var appointmentTransitions = map[string]map[string]bool{
	constvars.AppointmentStatusScheduled: {
		constvars.AppointmentStatusCompleted: true,
		constvars.AppointmentStatusCancelled: true,
	},
}

func CanTransitionAppointment(from, to string) bool {
	return appointmentTransitions[from][to]
}
