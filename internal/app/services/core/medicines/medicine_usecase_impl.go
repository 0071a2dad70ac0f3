package medicines

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/app/services/core/access"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/dto/responses"
	"medicore-service/internal/pkg/exceptions"
	"medicore-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// Medicine inventory is staff-clinical territory: only admin and doctor
// roles pass the access checks, receptionist and patient are denied whole.
type medicineUsecase struct {
	MedicineRepository contracts.MedicineRepository
	EventPublisher     contracts.EventPublisher
	Log                *zap.Logger
}

func NewMedicineUsecase(
	medicineRepository contracts.MedicineRepository,
	eventPublisher contracts.EventPublisher,
	log *zap.Logger,
) contracts.MedicineUsecase {
	return &medicineUsecase{
		MedicineRepository: medicineRepository,
		EventPublisher:     eventPublisher,
		Log:                log,
	}
}

func (uc *medicineUsecase) ListMedicines(ctx context.Context, session *models.Session, page *requests.Pagination) ([]responses.Medicine, int, error) {
	uc.Log.Info("medicineUsecase.ListMedicines called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionRead, constvars.ResourceMedicines, "", "")
	if err != nil {
		return nil, 0, err
	}

	medicines, total, err := uc.MedicineRepository.FindAll(ctx, access.ScopeQuery(session.Role, session.PatientID, constvars.ResourceMedicines), page.Page, page.PageSize)
	if err != nil {
		return nil, 0, err
	}

	items := make([]responses.Medicine, 0, len(medicines))
	for i := range medicines {
		items = append(items, *buildMedicineResponse(&medicines[i]))
	}
	return items, total, nil
}

func (uc *medicineUsecase) GetMedicineByID(ctx context.Context, session *models.Session, medicineID string) (*responses.Medicine, error) {
	uc.Log.Info("medicineUsecase.GetMedicineByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionRead, constvars.ResourceMedicines, "", "")
	if err != nil {
		return nil, err
	}

	medicine, err := uc.MedicineRepository.FindByID(ctx, medicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return buildMedicineResponse(medicine), nil
}

func (uc *medicineUsecase) CreateMedicine(ctx context.Context, session *models.Session, request *requests.CreateMedicine) (*responses.Medicine, error) {
	uc.Log.Info("medicineUsecase.CreateMedicine called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionCreate, constvars.ResourceMedicines, "", "")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	medicine := &models.Medicine{
		Name:         request.Name,
		Manufacturer: request.Manufacturer,
		Category:     request.Category,
		Price:        request.Price,
		Stock:        request.Stock,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	_, err = uc.MedicineRepository.CreateMedicine(ctx, medicine)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, string(access.ActionCreate), medicine.ID, medicine.UpdatedAt)
	return buildMedicineResponse(medicine), nil
}

func (uc *medicineUsecase) UpdateMedicine(ctx context.Context, session *models.Session, medicineID string, request *requests.UpdateMedicine) (*responses.Medicine, error) {
	uc.Log.Info("medicineUsecase.UpdateMedicine called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionUpdate, constvars.ResourceMedicines, "", "")
	if err != nil {
		return nil, err
	}

	medicine, err := uc.MedicineRepository.FindByID(ctx, medicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	medicine.Name = request.Name
	medicine.Manufacturer = request.Manufacturer
	medicine.Category = request.Category
	medicine.Price = request.Price
	medicine.Stock = request.Stock

	err = uc.MedicineRepository.UpdateMedicine(ctx, medicine)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, string(access.ActionUpdate), medicine.ID, medicine.UpdatedAt)
	return buildMedicineResponse(medicine), nil
}

func (uc *medicineUsecase) DeleteMedicine(ctx context.Context, session *models.Session, medicineID string) error {
	uc.Log.Info("medicineUsecase.DeleteMedicine called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionDelete, constvars.ResourceMedicines, "", "")
	if err != nil {
		return err
	}

	medicine, err := uc.MedicineRepository.FindByID(ctx, medicineID)
	if err != nil {
		return err
	}
	if medicine == nil {
		return exceptions.ErrRecordNotFound(nil)
	}

	err = uc.MedicineRepository.DeleteByID(ctx, medicineID)
	if err != nil {
		return err
	}

	uc.publishEvent(ctx, string(access.ActionDelete), medicineID, time.Now())
	return nil
}

func (uc *medicineUsecase) publishEvent(ctx context.Context, action, recordID string, version time.Time) {
	event := contracts.NewResourceEvent(constvars.ResourceMedicines, action, recordID, version)
	if err := uc.EventPublisher.PublishResourceEvent(ctx, event); err != nil {
		uc.Log.Warn("medicineUsecase failed to publish resource event",
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
	}
}

func buildMedicineResponse(medicine *models.Medicine) *responses.Medicine {
	return &responses.Medicine{
		ID:           medicine.ID,
		Name:         medicine.Name,
		Manufacturer: medicine.Manufacturer,
		Category:     medicine.Category,
		Price:        medicine.Price,
		Stock:        medicine.Stock,
	}
}
