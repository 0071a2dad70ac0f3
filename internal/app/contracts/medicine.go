package contracts

import (
	"context"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type MedicineRepository interface {
	FindAll(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Medicine, int, error)
	FindByID(ctx context.Context, medicineID string) (*models.Medicine, error)
	CreateMedicine(ctx context.Context, medicine *models.Medicine) (medicineID string, err error)
	UpdateMedicine(ctx context.Context, medicine *models.Medicine) error
	DeleteByID(ctx context.Context, medicineID string) error
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type MedicineUsecase interface {
	ListMedicines(ctx context.Context, session *models.Session, page *requests.Pagination) ([]responses.Medicine, int, error)
	GetMedicineByID(ctx context.Context, session *models.Session, medicineID string) (*responses.Medicine, error)
	CreateMedicine(ctx context.Context, session *models.Session, request *requests.CreateMedicine) (*responses.Medicine, error)
	UpdateMedicine(ctx context.Context, session *models.Session, medicineID string, request *requests.UpdateMedicine) (*responses.Medicine, error)
	DeleteMedicine(ctx context.Context, session *models.Session, medicineID string) error
}
