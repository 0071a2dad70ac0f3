package prescriptions

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

type PrescriptionController struct {
	PrescriptionUsecase contracts.PrescriptionUsecase
	Log                 *zap.Logger
}

func NewPrescriptionController(prescriptionUsecase contracts.PrescriptionUsecase, log *zap.Logger) *PrescriptionController {
	return &PrescriptionController{
		PrescriptionUsecase: prescriptionUsecase,
		Log:                 log,
	}
}

func (c *PrescriptionController) ListPrescriptions(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	if session.Role == constvars.RolePatient && !session.PatientLinked() {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientProfileNotLinked, &responses.PatientScopedList{
			ProfileLinked: false,
			Message:       constvars.PatientProfileNotLinked,
			Items:         []responses.Prescription{},
		})
		return
	}

	page := utils.BuildPaginationRequest(r)
	items, total, err := c.PrescriptionUsecase.ListPrescriptions(r.Context(), session, page)
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

func (c *PrescriptionController) GetPrescriptionByID(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	prescriptionID := chi.URLParam(r, "prescriptionID")
	response, err := c.PrescriptionUsecase.GetPrescriptionByID(r.Context(), session, prescriptionID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DetailRetrievedSuccess, response)
}

func (c *PrescriptionController) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.CreatePrescription)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.PrescriptionUsecase.CreatePrescription(r.Context(), session, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatedSuccess, response)
}

func (c *PrescriptionController) UpdatePrescription(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.UpdatePrescription)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	prescriptionID := chi.URLParam(r, "prescriptionID")
	response, err := c.PrescriptionUsecase.UpdatePrescription(r.Context(), session, prescriptionID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatedSuccess, response)
}

func (c *PrescriptionController) DeletePrescription(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	prescriptionID := chi.URLParam(r, "prescriptionID")
	err := c.PrescriptionUsecase.DeletePrescription(r.Context(), session, prescriptionID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletedSuccess, nil)
}
