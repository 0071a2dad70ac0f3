package dashboard

import (
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/exceptions"
	"medicore-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type DashboardController struct {
	DashboardUsecase contracts.DashboardUsecase
	Log              *zap.Logger
}

func NewDashboardController(dashboardUsecase contracts.DashboardUsecase, log *zap.Logger) *DashboardController {
	return &DashboardController{
		DashboardUsecase: dashboardUsecase,
		Log:              log,
	}
}

// GetStats serves the landing screen: hospital-wide counters for staff,
// own-records metrics for patient sessions.
func (c *DashboardController) GetStats(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	if session.Role == constvars.RolePatient {
		response, err := c.DashboardUsecase.GetPatientStats(r.Context(), session)
		if err != nil {
			utils.BuildErrorResponse(c.Log, w, err)
			return
		}
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StatsRetrievedSuccess, response)
		return
	}

	response, err := c.DashboardUsecase.GetHospitalStats(r.Context(), session)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StatsRetrievedSuccess, response)
}
