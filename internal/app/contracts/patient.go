package contracts

import (
	"context"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type PatientRepository interface {
	FindAll(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Patient, int, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	// FindByEmail must tolerate zero matches and return (nil, nil) when no
	// patient record has the given email. The account to patient link is an
	// optional relationship, never a must-exist lookup.
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
	CreatePatient(ctx context.Context, patient *models.Patient) (patientID string, err error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	DeleteByID(ctx context.Context, patientID string) error
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type PatientUsecase interface {
	ListPatients(ctx context.Context, session *models.Session, page *requests.Pagination) ([]responses.Patient, int, error)
	GetPatientByID(ctx context.Context, session *models.Session, patientID string) (*responses.Patient, error)
	CreatePatient(ctx context.Context, session *models.Session, request *requests.CreatePatient) (*responses.Patient, error)
	UpdatePatient(ctx context.Context, session *models.Session, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
	DeletePatient(ctx context.Context, session *models.Session, patientID string) error
}
