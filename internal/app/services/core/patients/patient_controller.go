package patients

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

type PatientController struct {
	PatientUsecase contracts.PatientUsecase
	Log            *zap.Logger
}

func NewPatientController(patientUsecase contracts.PatientUsecase, log *zap.Logger) *PatientController {
	return &PatientController{
		PatientUsecase: patientUsecase,
		Log:            log,
	}
}

func (c *PatientController) ListPatients(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	if session.Role == constvars.RolePatient && !session.PatientLinked() {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientProfileNotLinked, &responses.PatientScopedList{
			ProfileLinked: false,
			Message:       constvars.PatientProfileNotLinked,
			Items:         []responses.Patient{},
		})
		return
	}

	page := utils.BuildPaginationRequest(r)
	items, total, err := c.PatientUsecase.ListPatients(r.Context(), session, page)
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

func (c *PatientController) GetPatientByID(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	patientID := chi.URLParam(r, "patientID")
	response, err := c.PatientUsecase.GetPatientByID(r.Context(), session, patientID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DetailRetrievedSuccess, response)
}

func (c *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.CreatePatient)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.PatientUsecase.CreatePatient(r.Context(), session, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatedSuccess, response)
}

func (c *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.UpdatePatient)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	patientID := chi.URLParam(r, "patientID")
	response, err := c.PatientUsecase.UpdatePatient(r.Context(), session, patientID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatedSuccess, response)
}

func (c *PatientController) DeletePatient(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	patientID := chi.URLParam(r, "patientID")
	err := c.PatientUsecase.DeletePatient(r.Context(), session, patientID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletedSuccess, nil)
}
