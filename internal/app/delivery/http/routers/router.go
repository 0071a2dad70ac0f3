package routers

import (
	"fmt"
	"medicore-service/internal/app/config"
	"medicore-service/internal/app/delivery/http/middlewares"
	"medicore-service/internal/app/services/core/appointments"
	"medicore-service/internal/app/services/core/auth"
	"medicore-service/internal/app/services/core/dashboard"
	"medicore-service/internal/app/services/core/doctors"
	"medicore-service/internal/app/services/core/medicines"
	"medicore-service/internal/app/services/core/patients"
	"medicore-service/internal/app/services/core/payments"
	"medicore-service/internal/app/services/core/prescriptions"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	patientController *patients.PatientController,
	doctorController *doctors.DoctorController,
	appointmentController *appointments.AppointmentController,
	medicineController *medicines.MedicineController,
	prescriptionController *prescriptions.PrescriptionController,
	paymentController *payments.PaymentController,
	dashboardController *dashboard.DashboardController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/dashboard", func(r chi.Router) {
				attachDashboardRoutes(r, middlewares, dashboardController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, doctorController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			r.Route("/medicines", func(r chi.Router) {
				attachMedicineRoutes(r, middlewares, medicineController)
			})

			r.Route("/prescriptions", func(r chi.Router) {
				attachPrescriptionRoutes(r, middlewares, prescriptionController)
			})

			r.Route("/payments", func(r chi.Router) {
				attachPaymentRoutes(r, middlewares, paymentController)
			})
		})
	})
}
