package appointments

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

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
	DoctorRepository      contracts.DoctorRepository
	EventPublisher        contracts.EventPublisher
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	eventPublisher contracts.EventPublisher,
	log *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		PatientRepository:     patientRepository,
		DoctorRepository:      doctorRepository,
		EventPublisher:        eventPublisher,
		Log:                   log,
	}
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, session *models.Session, page *requests.Pagination) ([]responses.Appointment, int, error) {
	uc.Log.Info("appointmentUsecase.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	if !access.CanAccess(session.Role, access.ActionRead, constvars.ResourceAppointments) {
		return nil, 0, exceptions.ErrPermissionDenied(session.Role, string(access.ActionRead), constvars.ResourceAppointments)
	}

	filter := access.ScopeQuery(session.Role, session.PatientID, constvars.ResourceAppointments)
	appointments, total, err := uc.AppointmentRepository.FindAll(ctx, filter, page.Page, page.PageSize)
	if err != nil {
		return nil, 0, err
	}

	items := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		items = append(items, *uc.buildAppointmentResponse(ctx, &appointments[i]))
	}
	return items, total, nil
}

func (uc *appointmentUsecase) GetAppointmentByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	uc.Log.Info("appointmentUsecase.GetAppointmentByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	err = access.Authorize(session.Role, access.ActionRead, constvars.ResourceAppointments, appointment.PatientID, session.PatientID)
	if err != nil {
		return nil, err
	}
	return uc.buildAppointmentResponse(ctx, appointment), nil
}

// CreateAppointment books a slot. Patient sessions always book for their own
// linked record, whatever patient id the client sent.
func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error) {
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	patientID := request.PatientID
	if session.Role == constvars.RolePatient {
		if !session.PatientLinked() {
			return nil, exceptions.ErrPatientNotLinked()
		}
		patientID = session.PatientID
	}
	if patientID == "" {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, "patient_id is required", constvars.ErrDevValidationFailed)
	}

	err := access.Authorize(session.Role, access.ActionCreate, constvars.ResourceAppointments, patientID, session.PatientID)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
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

	scheduledAt, err := time.Parse(time.RFC3339, request.ScheduledAt)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	queueNumber, err := uc.nextQueueNumber(ctx, request.DoctorID, scheduledAt)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	appointment := &models.Appointment{
		PatientID:   patientID,
		DoctorID:    request.DoctorID,
		ScheduledAt: scheduledAt,
		Status:      constvars.AppointmentStatusScheduled,
		IsEmergency: request.IsEmergency,
		QueueNumber: queueNumber,
		Notes:       request.Notes,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	_, err = uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, string(access.ActionCreate), appointment.ID, appointment.UpdatedAt)
	return uc.buildAppointmentResponse(ctx, appointment), nil
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	uc.Log.Info("appointmentUsecase.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionUpdate, constvars.ResourceAppointments, "", "")
	if err != nil {
		return nil, err
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	scheduledAt, err := time.Parse(time.RFC3339, request.ScheduledAt)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	appointment.DoctorID = request.DoctorID
	appointment.ScheduledAt = scheduledAt
	appointment.IsEmergency = request.IsEmergency
	appointment.Notes = request.Notes

	err = uc.AppointmentRepository.UpdateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, string(access.ActionUpdate), appointment.ID, appointment.UpdatedAt)
	return uc.buildAppointmentResponse(ctx, appointment), nil
}

func (uc *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	uc.Log.Info("appointmentUsecase.UpdateAppointmentStatus called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	err = access.Authorize(session.Role, access.ActionUpdateStatus, constvars.ResourceAppointments, appointment.PatientID, session.PatientID)
	if err != nil {
		return nil, err
	}

	if !access.CanTransitionAppointment(appointment.Status, request.Status) {
		return nil, exceptions.ErrInvalidStatusTransition(appointment.Status, request.Status)
	}

	appointment.Status = request.Status
	err = uc.AppointmentRepository.UpdateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, string(access.ActionUpdateStatus), appointment.ID, appointment.UpdatedAt)
	return uc.buildAppointmentResponse(ctx, appointment), nil
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, session *models.Session, appointmentID string) error {
	uc.Log.Info("appointmentUsecase.DeleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := access.Authorize(session.Role, access.ActionDelete, constvars.ResourceAppointments, "", "")
	if err != nil {
		return err
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrRecordNotFound(nil)
	}

	err = uc.AppointmentRepository.DeleteByID(ctx, appointmentID)
	if err != nil {
		return err
	}

	uc.publishEvent(ctx, string(access.ActionDelete), appointmentID, time.Now())
	return nil
}

// nextQueueNumber assigns the per-doctor daily sequence, counted over the
// calendar day of the requested slot.
func (uc *appointmentUsecase) nextQueueNumber(ctx context.Context, doctorID string, scheduledAt time.Time) (int, error) {
	dayStart := time.Date(scheduledAt.Year(), scheduledAt.Month(), scheduledAt.Day(), 0, 0, 0, 0, scheduledAt.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	count, err := uc.AppointmentRepository.Count(ctx, bson.M{
		"doctorId":    doctorID,
		"scheduledAt": bson.M{"$gte": dayStart, "$lt": dayEnd},
	})
	if err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}

func (uc *appointmentUsecase) publishEvent(ctx context.Context, action, recordID string, version time.Time) {
	event := contracts.NewResourceEvent(constvars.ResourceAppointments, action, recordID, version)
	if err := uc.EventPublisher.PublishResourceEvent(ctx, event); err != nil {
		uc.Log.Warn("appointmentUsecase failed to publish resource event",
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
	}
}

// buildAppointmentResponse annotates the row with display names. Lookups that
// fail leave the name empty rather than failing the read.
func (uc *appointmentUsecase) buildAppointmentResponse(ctx context.Context, appointment *models.Appointment) *responses.Appointment {
	response := &responses.Appointment{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		DoctorID:    appointment.DoctorID,
		ScheduledAt: appointment.ScheduledAt,
		Status:      appointment.Status,
		IsEmergency: appointment.IsEmergency,
		QueueNumber: appointment.QueueNumber,
		Notes:       appointment.Notes,
	}

	if patient, err := uc.PatientRepository.FindByID(ctx, appointment.PatientID); err == nil && patient != nil {
		response.PatientName = patient.Name
	}
	if doctor, err := uc.DoctorRepository.FindByID(ctx, appointment.DoctorID); err == nil && doctor != nil {
		response.DoctorName = doctor.Name
	}
	return response
}
