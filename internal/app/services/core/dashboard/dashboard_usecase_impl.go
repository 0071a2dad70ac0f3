package dashboard

import (
	"context"
	"medicore-service/internal/app/config"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/app/services/core/access"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/dto/responses"
	"medicore-service/internal/pkg/exceptions"
	"medicore-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type dashboardUsecase struct {
	PatientRepository      contracts.PatientRepository
	DoctorRepository       contracts.DoctorRepository
	AppointmentRepository  contracts.AppointmentRepository
	MedicineRepository     contracts.MedicineRepository
	PrescriptionRepository contracts.PrescriptionRepository
	PaymentRepository      contracts.PaymentRepository
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewDashboardUsecase(
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	appointmentRepository contracts.AppointmentRepository,
	medicineRepository contracts.MedicineRepository,
	prescriptionRepository contracts.PrescriptionRepository,
	paymentRepository contracts.PaymentRepository,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) contracts.DashboardUsecase {
	return &dashboardUsecase{
		PatientRepository:      patientRepository,
		DoctorRepository:       doctorRepository,
		AppointmentRepository:  appointmentRepository,
		MedicineRepository:     medicineRepository,
		PrescriptionRepository: prescriptionRepository,
		PaymentRepository:      paymentRepository,
		InternalConfig:         internalConfig,
		Log:                    log,
	}
}

func (uc *dashboardUsecase) GetHospitalStats(ctx context.Context, session *models.Session) (*responses.HospitalStats, error) {
	uc.Log.Info("dashboardUsecase.GetHospitalStats called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	permission := access.Lookup(session.Role, access.ActionRead, constvars.ResourceDashboard)
	if !permission.Allowed || permission.OwnOnly {
		return nil, exceptions.ErrPermissionDenied(session.Role, string(access.ActionRead), constvars.ResourceDashboard)
	}

	totalPatients, err := uc.PatientRepository.Count(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	totalDoctors, err := uc.DoctorRepository.Count(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := todayBounds(time.Now())
	appointmentsToday, err := uc.AppointmentRepository.Count(ctx, bson.M{
		"scheduledAt": bson.M{"$gte": dayStart, "$lt": dayEnd},
	})
	if err != nil {
		return nil, err
	}

	pendingPayments, err := uc.PaymentRepository.Count(ctx, bson.M{"status": constvars.PaymentStatusPending})
	if err != nil {
		return nil, err
	}

	lowStock, err := uc.MedicineRepository.Count(ctx, bson.M{
		"stock": bson.M{"$lt": uc.InternalConfig.App.MedicineLowStock},
	})
	if err != nil {
		return nil, err
	}

	return &responses.HospitalStats{
		TotalPatients:     totalPatients,
		TotalDoctors:      totalDoctors,
		AppointmentsToday: appointmentsToday,
		PendingPayments:   pendingPayments,
		LowStockMedicines: lowStock,
	}, nil
}

func (uc *dashboardUsecase) GetPatientStats(ctx context.Context, session *models.Session) (*responses.PatientStats, error) {
	uc.Log.Info("dashboardUsecase.GetPatientStats called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	if !access.CanAccess(session.Role, access.ActionRead, constvars.ResourceDashboard) {
		return nil, exceptions.ErrPermissionDenied(session.Role, string(access.ActionRead), constvars.ResourceDashboard)
	}

	if !session.PatientLinked() {
		return &responses.PatientStats{
			ProfileLinked: false,
			Message:       constvars.PatientProfileNotLinked,
		}, nil
	}

	upcoming, err := uc.AppointmentRepository.Count(ctx, bson.M{
		"patientId":   session.PatientID,
		"status":      constvars.AppointmentStatusScheduled,
		"scheduledAt": bson.M{"$gte": time.Now()},
	})
	if err != nil {
		return nil, err
	}

	prescriptions, err := uc.PrescriptionRepository.Count(ctx, bson.M{"patientId": session.PatientID})
	if err != nil {
		return nil, err
	}

	unpaid, err := uc.PaymentRepository.SumAmount(ctx, bson.M{
		"patientId": session.PatientID,
		"status":    constvars.PaymentStatusPending,
	})
	if err != nil {
		return nil, err
	}

	return &responses.PatientStats{
		ProfileLinked:        true,
		UpcomingAppointments: upcoming,
		ActivePrescriptions:  prescriptions,
		UnpaidAmount:         unpaid,
	}, nil
}

func todayBounds(now time.Time) (time.Time, time.Time) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dayStart, dayStart.Add(24 * time.Hour)
}
