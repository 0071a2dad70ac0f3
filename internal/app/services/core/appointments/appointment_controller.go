package appointments

import (
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/dto/responses"
	"medicore-service/internal/pkg/exceptions"
	"medicore-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	AppointmentUsecase contracts.AppointmentUsecase
	Log                *zap.Logger
}

func NewAppointmentController(appointmentUsecase contracts.AppointmentUsecase, log *zap.Logger) *AppointmentController {
	return &AppointmentController{
		AppointmentUsecase: appointmentUsecase,
		Log:                log,
	}
}

func (c *AppointmentController) ListAppointments(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	if session.Role == constvars.RolePatient && !session.PatientLinked() {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientProfileNotLinked, &responses.PatientScopedList{
			ProfileLinked: false,
			Message:       constvars.PatientProfileNotLinked,
			Items:         []responses.Appointment{},
		})
		return
	}

	page := utils.BuildPaginationRequest(r)
	items, total, err := c.AppointmentUsecase.ListAppointments(r.Context(), session, page)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	if session.Role == constvars.RolePatient {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListRetrievedSuccess, &responses.PatientScopedList{
			ProfileLinked: true,
			Items:         items,
		})
		return
	}

	pagination := utils.BuildPaginationResponse(total, page.Page, page.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListRetrievedSuccess, pagination, items)
}

func (c *AppointmentController) GetAppointmentByID(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	appointmentID := chi.URLParam(r, "appointmentID")
	response, err := c.AppointmentUsecase.GetAppointmentByID(r.Context(), session, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DetailRetrievedSuccess, response)
}

func (c *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.CreateAppointment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.AppointmentUsecase.CreateAppointment(r.Context(), session, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatedSuccess, response)
}

func (c *AppointmentController) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.UpdateAppointment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	appointmentID := chi.URLParam(r, "appointmentID")
	response, err := c.AppointmentUsecase.UpdateAppointment(r.Context(), session, appointmentID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatedSuccess, response)
}

func (c *AppointmentController) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.UpdateAppointmentStatus)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	appointmentID := chi.URLParam(r, "appointmentID")
	response, err := c.AppointmentUsecase.UpdateAppointmentStatus(r.Context(), session, appointmentID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatedSuccess, response)
}

func (c *AppointmentController) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	appointmentID := chi.URLParam(r, "appointmentID")
	err := c.AppointmentUsecase.DeleteAppointment(r.Context(), session, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletedSuccess, nil)
}
