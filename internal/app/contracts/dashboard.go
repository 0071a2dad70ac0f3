package contracts

import (
	"context"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/dto/responses"
)

// DashboardUsecase serves the landing screen metrics. Staff roles get
// hospital-wide counters, patient sessions get their own reduced set.
type DashboardUsecase interface {
	GetHospitalStats(ctx context.Context, session *models.Session) (*responses.HospitalStats, error)
	GetPatientStats(ctx context.Context, session *models.Session) (*responses.PatientStats, error)
}
