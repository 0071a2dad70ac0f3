package contracts

import (
	"context"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type DoctorRepository interface {
	FindAll(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Doctor, int, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (doctorID string, err error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
	DeleteByID(ctx context.Context, doctorID string) error
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, session *models.Session, page *requests.Pagination) ([]responses.Doctor, int, error)
	GetDoctorByID(ctx context.Context, session *models.Session, doctorID string) (*responses.Doctor, error)
	CreateDoctor(ctx context.Context, session *models.Session, request *requests.CreateDoctor) (*responses.Doctor, error)
	UpdateDoctor(ctx context.Context, session *models.Session, doctorID string, request *requests.UpdateDoctor) (*responses.Doctor, error)
	DeleteDoctor(ctx context.Context, session *models.Session, doctorID string) error
}
