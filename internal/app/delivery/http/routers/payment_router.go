package routers

import (
	"medicore-service/internal/app/delivery/http/middlewares"
	"medicore-service/internal/app/services/core/payments"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *payments.PaymentController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", paymentController.ListPayments)
	router.Post("/", paymentController.CreatePayment)
	router.Get("/{paymentID}", paymentController.GetPaymentByID)
	router.Get("/{paymentID}/receipt", paymentController.ExportReceipt)
	router.Put("/{paymentID}/status", paymentController.UpdatePaymentStatus)
	router.Delete("/{paymentID}", paymentController.DeletePayment)
}
