package doctors

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

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	EventPublisher   contracts.EventPublisher
	Log              *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	eventPublisher contracts.EventPublisher,
	log *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		EventPublisher:   eventPublisher,
		Log:              log,
	}
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context, session *models.Session, page *requests.Pagination) ([]responses.Doctor, int, error) {
	uc.Log.Info("doctorUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionRead, constvars.ResourceDoctors, "", "")
	if err != nil {
		return nil, 0, err
	}

	doctors, total, err := uc.DoctorRepository.FindAll(ctx, access.ScopeQuery(session.Role, session.PatientID, constvars.ResourceDoctors), page.Page, page.PageSize)
	if err != nil {
		return nil, 0, err
	}

	items := make([]responses.Doctor, 0, len(doctors))
	for i := range doctors {
		items = append(items, *buildDoctorResponse(&doctors[i]))
	}
	return items, total, nil
}

func (uc *doctorUsecase) GetDoctorByID(ctx context.Context, session *models.Session, doctorID string) (*responses.Doctor, error) {
	uc.Log.Info("doctorUsecase.GetDoctorByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionRead, constvars.ResourceDoctors, "", "")
	if err != nil {
		return nil, err
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return buildDoctorResponse(doctor), nil
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, session *models.Session, request *requests.CreateDoctor) (*responses.Doctor, error) {
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionCreate, constvars.ResourceDoctors, "", "")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	doctor := &models.Doctor{
		Name:           request.Name,
		Email:          utils.SanitizeEmail(request.Email),
		Phone:          request.Phone,
		Specialization: request.Specialization,
		Qualification:  request.Qualification,
		IsAvailable:    request.IsAvailable,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	_, err = uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, string(access.ActionCreate), doctor.ID, doctor.UpdatedAt)
	return buildDoctorResponse(doctor), nil
}

func (uc *doctorUsecase) UpdateDoctor(ctx context.Context, session *models.Session, doctorID string, request *requests.UpdateDoctor) (*responses.Doctor, error) {
	uc.Log.Info("doctorUsecase.UpdateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionUpdate, constvars.ResourceDoctors, "", "")
	if err != nil {
		return nil, err
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	doctor.Name = request.Name
	doctor.Phone = request.Phone
	doctor.Specialization = request.Specialization
	doctor.Qualification = request.Qualification
	doctor.IsAvailable = request.IsAvailable

	err = uc.DoctorRepository.UpdateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, string(access.ActionUpdate), doctor.ID, doctor.UpdatedAt)
	return buildDoctorResponse(doctor), nil
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, session *models.Session, doctorID string) error {
	uc.Log.Info("doctorUsecase.DeleteDoctor called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionDelete, constvars.ResourceDoctors, "", "")
	if err != nil {
		return err
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrRecordNotFound(nil)
	}

	err = uc.DoctorRepository.DeleteByID(ctx, doctorID)
	if err != nil {
		return err
	}

	uc.publishEvent(ctx, string(access.ActionDelete), doctorID, time.Now())
	return nil
}

func (uc *doctorUsecase) publishEvent(ctx context.Context, action, recordID string, version time.Time) {
	event := contracts.NewResourceEvent(constvars.ResourceDoctors, action, recordID, version)
	if err := uc.EventPublisher.PublishResourceEvent(ctx, event); err != nil {
		uc.Log.Warn("doctorUsecase failed to publish resource event",
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
	}
}

func buildDoctorResponse(doctor *models.Doctor) *responses.Doctor {
	return &responses.Doctor{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Email:          doctor.Email,
		Phone:          doctor.Phone,
		Specialization: doctor.Specialization,
		Qualification:  doctor.Qualification,
		IsAvailable:    doctor.IsAvailable,
	}
}
