package payments

import (
	"context"
	"medicore-service/internal/app/config"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/app/services/core/access"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/dto/responses"
	"medicore-service/internal/pkg/exceptions"
	"medicore-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type paymentUsecase struct {
	PaymentRepository     contracts.PaymentRepository
	PatientRepository     contracts.PatientRepository
	AppointmentRepository contracts.AppointmentRepository
	ReceiptStorage        contracts.ReceiptStorage
	EventPublisher        contracts.EventPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	patientRepository contracts.PatientRepository,
	appointmentRepository contracts.AppointmentRepository,
	receiptStorage contracts.ReceiptStorage,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) contracts.PaymentUsecase {
	return &paymentUsecase{
		PaymentRepository:     paymentRepository,
		PatientRepository:     patientRepository,
		AppointmentRepository: appointmentRepository,
		ReceiptStorage:        receiptStorage,
		EventPublisher:        eventPublisher,
		InternalConfig:        internalConfig,
		Log:                   log,
	}
}

func (uc *paymentUsecase) ListPayments(ctx context.Context, session *models.Session, page *requests.Pagination) ([]responses.Payment, int, error) {
	uc.Log.Info("paymentUsecase.ListPayments called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	if !access.CanAccess(session.Role, access.ActionRead, constvars.ResourcePayments) {
		return nil, 0, exceptions.ErrPermissionDenied(session.Role, string(access.ActionRead), constvars.ResourcePayments)
	}

	filter := access.ScopeQuery(session.Role, session.PatientID, constvars.ResourcePayments)
	payments, total, err := uc.PaymentRepository.FindAll(ctx, filter, page.Page, page.PageSize)
	if err != nil {
		return nil, 0, err
	}

	items := make([]responses.Payment, 0, len(payments))
	for i := range payments {
		items = append(items, *uc.buildPaymentResponse(ctx, &payments[i]))
	}
	return items, total, nil
}

func (uc *paymentUsecase) GetPaymentByID(ctx context.Context, session *models.Session, paymentID string) (*responses.Payment, error) {
	uc.Log.Info("paymentUsecase.GetPaymentByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	payment, err := uc.PaymentRepository.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	err = access.Authorize(session.Role, access.ActionRead, constvars.ResourcePayments, payment.PatientID, session.PatientID)
	if err != nil {
		return nil, err
	}
	return uc.buildPaymentResponse(ctx, payment), nil
}

func (uc *paymentUsecase) CreatePayment(ctx context.Context, session *models.Session, request *requests.CreatePayment) (*responses.Payment, error) {
	uc.Log.Info("paymentUsecase.CreatePayment called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionCreate, constvars.ResourcePayments, "", "")
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if request.AppointmentID != "" {
		appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
		if err != nil {
			return nil, err
		}
		if appointment == nil {
			return nil, exceptions.ErrRecordNotFound(nil)
		}
	}

	now := time.Now()
	payment := &models.Payment{
		PatientID:     request.PatientID,
		AppointmentID: request.AppointmentID,
		Amount:        request.Amount,
		Method:        request.Method,
		Status:        constvars.PaymentStatusPending,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	_, err = uc.PaymentRepository.CreatePayment(ctx, payment)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, string(access.ActionCreate), payment.ID, payment.UpdatedAt)
	return uc.buildPaymentResponse(ctx, payment), nil
}

func (uc *paymentUsecase) UpdatePaymentStatus(ctx context.Context, session *models.Session, paymentID string, request *requests.UpdatePaymentStatus) (*responses.Payment, error) {
	uc.Log.Info("paymentUsecase.UpdatePaymentStatus called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionUpdateStatus, constvars.ResourcePayments, "", "")
	if err != nil {
		return nil, err
	}

	payment, err := uc.PaymentRepository.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	payment.Status = request.Status
	err = uc.PaymentRepository.UpdatePayment(ctx, payment)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, string(access.ActionUpdateStatus), payment.ID, payment.UpdatedAt)
	return uc.buildPaymentResponse(ctx, payment), nil
}

func (uc *paymentUsecase) DeletePayment(ctx context.Context, session *models.Session, paymentID string) error {
	uc.Log.Info("paymentUsecase.DeletePayment called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionDelete, constvars.ResourcePayments, "", "")
	if err != nil {
		return err
	}

	payment, err := uc.PaymentRepository.FindByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment == nil {
		return exceptions.ErrRecordNotFound(nil)
	}

	err = uc.PaymentRepository.DeleteByID(ctx, paymentID)
	if err != nil {
		return err
	}

	uc.publishEvent(ctx, string(access.ActionDelete), paymentID, time.Now())
	return nil
}

// ExportReceipt archives the receipt as a JSON object on first export, then
// serves a presigned URL. Patients may only export receipts for their own
// payments.
func (uc *paymentUsecase) ExportReceipt(ctx context.Context, session *models.Session, paymentID string) (*responses.PaymentReceipt, error) {
	uc.Log.Info("paymentUsecase.ExportReceipt called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	payment, err := uc.PaymentRepository.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	err = access.Authorize(session.Role, access.ActionRead, constvars.ResourcePayments, payment.PatientID, session.PatientID)
	if err != nil {
		return nil, err
	}

	if payment.ReceiptObject == "" {
		payload, err := json.Marshal(uc.buildPaymentResponse(ctx, payment))
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}

		objectName := utils.GenerateReceiptObjectName(payment.ID)
		err = uc.ReceiptStorage.StoreReceipt(ctx, objectName, payload)
		if err != nil {
			return nil, err
		}

		payment.ReceiptObject = objectName
		err = uc.PaymentRepository.UpdatePayment(ctx, payment)
		if err != nil {
			return nil, err
		}
	}

	expiry := time.Duration(uc.InternalConfig.App.ReceiptURLExpiryHours) * time.Hour
	url, err := uc.ReceiptStorage.PresignReceiptURL(ctx, payment.ReceiptObject, expiry)
	if err != nil {
		return nil, err
	}

	return &responses.PaymentReceipt{
		PaymentID:  payment.ID,
		ReceiptURL: url,
	}, nil
}

func (uc *paymentUsecase) publishEvent(ctx context.Context, action, recordID string, version time.Time) {
	event := contracts.NewResourceEvent(constvars.ResourcePayments, action, recordID, version)
	if err := uc.EventPublisher.PublishResourceEvent(ctx, event); err != nil {
		uc.Log.Warn("paymentUsecase failed to publish resource event",
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
	}
}

func (uc *paymentUsecase) buildPaymentResponse(ctx context.Context, payment *models.Payment) *responses.Payment {
	response := &responses.Payment{
		ID:            payment.ID,
		PatientID:     payment.PatientID,
		AppointmentID: payment.AppointmentID,
		Amount:        payment.Amount,
		Method:        payment.Method,
		Status:        payment.Status,
	}

	if patient, err := uc.PatientRepository.FindByID(ctx, payment.PatientID); err == nil && patient != nil {
		response.PatientName = patient.Name
	}
	return response
}
