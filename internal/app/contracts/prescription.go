package contracts

import (
	"context"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type PrescriptionRepository interface {
	FindAll(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Prescription, int, error)
	FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error)
	CreatePrescription(ctx context.Context, prescription *models.Prescription) (prescriptionID string, err error)
	UpdatePrescription(ctx context.Context, prescription *models.Prescription) error
	DeleteByID(ctx context.Context, prescriptionID string) error
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type PrescriptionUsecase interface {
	ListPrescriptions(ctx context.Context, session *models.Session, page *requests.Pagination) ([]responses.Prescription, int, error)
	GetPrescriptionByID(ctx context.Context, session *models.Session, prescriptionID string) (*responses.Prescription, error)
	CreatePrescription(ctx context.Context, session *models.Session, request *requests.CreatePrescription) (*responses.Prescription, error)
	UpdatePrescription(ctx context.Context, session *models.Session, prescriptionID string, request *requests.UpdatePrescription) (*responses.Prescription, error)
	DeletePrescription(ctx context.Context, session *models.Session, prescriptionID string) error
}
