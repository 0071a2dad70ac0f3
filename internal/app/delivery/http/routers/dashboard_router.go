package routers

import (
	"medicore-service/internal/app/delivery/http/middlewares"
	"medicore-service/internal/app/services/core/dashboard"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *dashboard.DashboardController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", dashboardController.GetStats)
}
