package patients

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

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	EventPublisher    contracts.EventPublisher
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	eventPublisher contracts.EventPublisher,
	log *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		EventPublisher:    eventPublisher,
		Log:               log,
	}
}

func (uc *patientUsecase) ListPatients(ctx context.Context, session *models.Session, page *requests.Pagination) ([]responses.Patient, int, error) {
	uc.Log.Info("patientUsecase.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	if !access.CanAccess(session.Role, access.ActionRead, constvars.ResourcePatients) {
		return nil, 0, exceptions.ErrPermissionDenied(session.Role, string(access.ActionRead), constvars.ResourcePatients)
	}

	filter := access.ScopeQuery(session.Role, session.PatientID, constvars.ResourcePatients)
	patients, total, err := uc.PatientRepository.FindAll(ctx, filter, page.Page, page.PageSize)
	if err != nil {
		return nil, 0, err
	}

	items := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		items = append(items, *buildPatientResponse(&patients[i]))
	}
	return items, total, nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, session *models.Session, patientID string) (*responses.Patient, error) {
	uc.Log.Info("patientUsecase.GetPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	if !access.CanAccess(session.Role, access.ActionRead, constvars.ResourcePatients) {
		return nil, exceptions.ErrPermissionDenied(session.Role, string(access.ActionRead), constvars.ResourcePatients)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	// Ownership of a patient record is the record itself.
	err = access.Authorize(session.Role, access.ActionRead, constvars.ResourcePatients, patient.ID, session.PatientID)
	if err != nil {
		return nil, err
	}
	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, session *models.Session, request *requests.CreatePatient) (*responses.Patient, error) {
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionCreate, constvars.ResourcePatients, "", "")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	patient := &models.Patient{
		Name:         request.Name,
		Email:        utils.SanitizeEmail(request.Email),
		Phone:        request.Phone,
		Age:          request.Age,
		Gender:       request.Gender,
		BloodGroup:   request.BloodGroup,
		Address:      request.Address,
		MedicalNotes: request.MedicalNotes,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	_, err = uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, string(access.ActionCreate), patient.ID, patient.UpdatedAt)
	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, session *models.Session, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	err = access.Authorize(session.Role, access.ActionUpdate, constvars.ResourcePatients, patient.ID, session.PatientID)
	if err != nil {
		return nil, err
	}

	// Email stays immutable after creation, it carries the account link.
	patient.Name = request.Name
	patient.Phone = request.Phone
	patient.Age = request.Age
	patient.Gender = request.Gender
	patient.BloodGroup = request.BloodGroup
	patient.Address = request.Address
	patient.MedicalNotes = request.MedicalNotes

	err = uc.PatientRepository.UpdatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, string(access.ActionUpdate), patient.ID, patient.UpdatedAt)
	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, session *models.Session, patientID string) error {
	uc.Log.Info("patientUsecase.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionDelete, constvars.ResourcePatients, "", "")
	if err != nil {
		return err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrRecordNotFound(nil)
	}

	err = uc.PatientRepository.DeleteByID(ctx, patientID)
	if err != nil {
		return err
	}

	uc.publishEvent(ctx, string(access.ActionDelete), patientID, time.Now())
	return nil
}

// publishEvent notifies the dashboard push channel. A failed publish never
// fails the request, consumers reconcile on their next full refresh.
func (uc *patientUsecase) publishEvent(ctx context.Context, action, recordID string, version time.Time) {
	event := contracts.NewResourceEvent(constvars.ResourcePatients, action, recordID, version)
	if err := uc.EventPublisher.PublishResourceEvent(ctx, event); err != nil {
		uc.Log.Warn("patientUsecase failed to publish resource event",
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
	}
}

func buildPatientResponse(patient *models.Patient) *responses.Patient {
	return &responses.Patient{
		ID:           patient.ID,
		Name:         patient.Name,
		Email:        patient.Email,
		Phone:        patient.Phone,
		Age:          patient.Age,
		Gender:       patient.Gender,
		BloodGroup:   patient.BloodGroup,
		Address:      patient.Address,
		MedicalNotes: patient.MedicalNotes,
	}
}
