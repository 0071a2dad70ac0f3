package contracts

import (
	"context"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type PaymentRepository interface {
	FindAll(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Payment, int, error)
	FindByID(ctx context.Context, paymentID string) (*models.Payment, error)
	CreatePayment(ctx context.Context, payment *models.Payment) (paymentID string, err error)
	UpdatePayment(ctx context.Context, payment *models.Payment) error
	DeleteByID(ctx context.Context, paymentID string) error
	Count(ctx context.Context, filter bson.M) (int64, error)
	SumAmount(ctx context.Context, filter bson.M) (float64, error)
}

type PaymentUsecase interface {
	ListPayments(ctx context.Context, session *models.Session, page *requests.Pagination) ([]responses.Payment, int, error)
	GetPaymentByID(ctx context.Context, session *models.Session, paymentID string) (*responses.Payment, error)
	CreatePayment(ctx context.Context, session *models.Session, request *requests.CreatePayment) (*responses.Payment, error)
	UpdatePaymentStatus(ctx context.Context, session *models.Session, paymentID string, request *requests.UpdatePaymentStatus) (*responses.Payment, error)
	DeletePayment(ctx context.Context, session *models.Session, paymentID string) error
	ExportReceipt(ctx context.Context, session *models.Session, paymentID string) (*responses.PaymentReceipt, error)
}
