package prescriptions

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

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	PatientRepository      contracts.PatientRepository
	DoctorRepository       contracts.DoctorRepository
	MedicineRepository     contracts.MedicineRepository
	EventPublisher         contracts.EventPublisher
	Log                    *zap.Logger
}

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	medicineRepository contracts.MedicineRepository,
	eventPublisher contracts.EventPublisher,
	log *zap.Logger,
) contracts.PrescriptionUsecase {
	return &prescriptionUsecase{
		PrescriptionRepository: prescriptionRepository,
		PatientRepository:      patientRepository,
		DoctorRepository:       doctorRepository,
		MedicineRepository:     medicineRepository,
		EventPublisher:         eventPublisher,
		Log:                    log,
	}
}

func (uc *prescriptionUsecase) ListPrescriptions(ctx context.Context, session *models.Session, page *requests.Pagination) ([]responses.Prescription, int, error) {
	uc.Log.Info("prescriptionUsecase.ListPrescriptions called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	if !access.CanAccess(session.Role, access.ActionRead, constvars.ResourcePrescriptions) {
		return nil, 0, exceptions.ErrPermissionDenied(session.Role, string(access.ActionRead), constvars.ResourcePrescriptions)
	}

	filter := access.ScopeQuery(session.Role, session.PatientID, constvars.ResourcePrescriptions)
	prescriptions, total, err := uc.PrescriptionRepository.FindAll(ctx, filter, page.Page, page.PageSize)
	if err != nil {
		return nil, 0, err
	}

	items := make([]responses.Prescription, 0, len(prescriptions))
	for i := range prescriptions {
		items = append(items, *uc.buildPrescriptionResponse(ctx, &prescriptions[i]))
	}
	return items, total, nil
}

func (uc *prescriptionUsecase) GetPrescriptionByID(ctx context.Context, session *models.Session, prescriptionID string) (*responses.Prescription, error) {
	uc.Log.Info("prescriptionUsecase.GetPrescriptionByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	err = access.Authorize(session.Role, access.ActionRead, constvars.ResourcePrescriptions, prescription.PatientID, session.PatientID)
	if err != nil {
		return nil, err
	}
	return uc.buildPrescriptionResponse(ctx, prescription), nil
}

func (uc *prescriptionUsecase) CreatePrescription(ctx context.Context, session *models.Session, request *requests.CreatePrescription) (*responses.Prescription, error) {
	uc.Log.Info("prescriptionUsecase.CreatePrescription called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionCreate, constvars.ResourcePrescriptions, "", "")
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
	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	medicine, err := uc.MedicineRepository.FindByID(ctx, request.MedicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	now := time.Now()
	prescription := &models.Prescription{
		PatientID:  request.PatientID,
		DoctorID:   request.DoctorID,
		MedicineID: request.MedicineID,
		Dosage:     request.Dosage,
		Duration:   request.Duration,
		Notes:      request.Notes,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	_, err = uc.PrescriptionRepository.CreatePrescription(ctx, prescription)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, string(access.ActionCreate), prescription.ID, prescription.UpdatedAt)
	return uc.buildPrescriptionResponse(ctx, prescription), nil
}

func (uc *prescriptionUsecase) UpdatePrescription(ctx context.Context, session *models.Session, prescriptionID string, request *requests.UpdatePrescription) (*responses.Prescription, error) {
	uc.Log.Info("prescriptionUsecase.UpdatePrescription called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionUpdate, constvars.ResourcePrescriptions, "", "")
	if err != nil {
		return nil, err
	}

	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	medicine, err := uc.MedicineRepository.FindByID(ctx, request.MedicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	prescription.MedicineID = request.MedicineID
	prescription.Dosage = request.Dosage
	prescription.Duration = request.Duration
	prescription.Notes = request.Notes

	err = uc.PrescriptionRepository.UpdatePrescription(ctx, prescription)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, string(access.ActionUpdate), prescription.ID, prescription.UpdatedAt)
	return uc.buildPrescriptionResponse(ctx, prescription), nil
}

func (uc *prescriptionUsecase) DeletePrescription(ctx context.Context, session *models.Session, prescriptionID string) error {
	uc.Log.Info("prescriptionUsecase.DeletePrescription called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionDelete, constvars.ResourcePrescriptions, "", "")
	if err != nil {
		return err
	}

	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return err
	}
	if prescription == nil {
		return exceptions.ErrRecordNotFound(nil)
	}

	err = uc.PrescriptionRepository.DeleteByID(ctx, prescriptionID)
	if err != nil {
		return err
	}

	uc.publishEvent(ctx, string(access.ActionDelete), prescriptionID, time.Now())
	return nil
}

func (uc *prescriptionUsecase) publishEvent(ctx context.Context, action, recordID string, version time.Time) {
	event := contracts.NewResourceEvent(constvars.ResourcePrescriptions, action, recordID, version)
	if err := uc.EventPublisher.PublishResourceEvent(ctx, event); err != nil {
		uc.Log.Warn("prescriptionUsecase failed to publish resource event",
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
	}
}

func (uc *prescriptionUsecase) buildPrescriptionResponse(ctx context.Context, prescription *models.Prescription) *responses.Prescription {
	response := &responses.Prescription{
		ID:         prescription.ID,
		PatientID:  prescription.PatientID,
		DoctorID:   prescription.DoctorID,
		MedicineID: prescription.MedicineID,
		Dosage:     prescription.Dosage,
		Duration:   prescription.Duration,
		Notes:      prescription.Notes,
	}

	if patient, err := uc.PatientRepository.FindByID(ctx, prescription.PatientID); err == nil && patient != nil {
		response.PatientName = patient.Name
	}
	if doctor, err := uc.DoctorRepository.FindByID(ctx, prescription.DoctorID); err == nil && doctor != nil {
		response.DoctorName = doctor.Name
	}
	if medicine, err := uc.MedicineRepository.FindByID(ctx, prescription.MedicineID); err == nil && medicine != nil {
		response.MedicineName = medicine.Name
	}
	return response
}
