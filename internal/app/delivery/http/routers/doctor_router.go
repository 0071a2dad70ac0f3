package routers

import (
	"medicore-service/internal/app/delivery/http/middlewares"
	"medicore-service/internal/app/services/core/doctors"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", doctorController.ListDoctors)
	router.Post("/", doctorController.CreateDoctor)
	router.Get("/{doctorID}", doctorController.GetDoctorByID)
	router.Put("/{doctorID}", doctorController.UpdateDoctor)
	router.Delete("/{doctorID}", doctorController.DeleteDoctor)
}
