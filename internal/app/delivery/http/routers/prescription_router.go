package routers

import (
	"medicore-service/internal/app/delivery/http/middlewares"
	"medicore-service/internal/app/services/core/prescriptions"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, prescriptionController *prescriptions.PrescriptionController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", prescriptionController.ListPrescriptions)
	router.Post("/", prescriptionController.CreatePrescription)
	router.Get("/{prescriptionID}", prescriptionController.GetPrescriptionByID)
	router.Put("/{prescriptionID}", prescriptionController.UpdatePrescription)
	router.Delete("/{prescriptionID}", prescriptionController.DeletePrescription)
}
