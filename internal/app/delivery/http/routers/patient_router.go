package routers

import (
	"medicore-service/internal/app/delivery/http/middlewares"
	"medicore-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", patientController.ListPatients)
	router.Post("/", patientController.CreatePatient)
	router.Get("/{patientID}", patientController.GetPatientByID)
	router.Put("/{patientID}", patientController.UpdatePatient)
	router.Delete("/{patientID}", patientController.DeletePatient)
}
