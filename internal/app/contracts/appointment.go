package contracts

import (
	"context"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type AppointmentRepository interface {
	FindAll(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Appointment, int, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
	DeleteByID(ctx context.Context, appointmentID string) error
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, session *models.Session, page *requests.Pagination) ([]responses.Appointment, int, error)
	GetAppointmentByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error)
	UpdateAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
	DeleteAppointment(ctx context.Context, session *models.Session, appointmentID string) error
}
