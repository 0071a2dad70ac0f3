package routers

import (
	"medicore-service/internal/app/delivery/http/middlewares"
	"medicore-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", appointmentController.ListAppointments)
	router.Post("/", appointmentController.CreateAppointment)
	router.Get("/{appointmentID}", appointmentController.GetAppointmentByID)
	router.Put("/{appointmentID}", appointmentController.UpdateAppointment)
	router.Put("/{appointmentID}/status", appointmentController.UpdateAppointmentStatus)
	router.Delete("/{appointmentID}", appointmentController.DeleteAppointment)
}
