package routers

import (
	"medicore-service/internal/app/delivery/http/middlewares"
	"medicore-service/internal/app/services/core/medicines"

	"github.com/go-chi/chi/v5"
)

func attachMedicineRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicineController *medicines.MedicineController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", medicineController.ListMedicines)
	router.Post("/", medicineController.CreateMedicine)
	router.Get("/{medicineID}", medicineController.GetMedicineByID)
	router.Put("/{medicineID}", medicineController.UpdateMedicine)
	router.Delete("/{medicineID}", medicineController.DeleteMedicine)
}
