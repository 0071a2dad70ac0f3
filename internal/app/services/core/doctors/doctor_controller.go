package doctors

import (
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/exceptions"
	"medicore-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DoctorController struct {
	DoctorUsecase contracts.DoctorUsecase
	Log           *zap.Logger
}

func NewDoctorController(doctorUsecase contracts.DoctorUsecase, log *zap.Logger) *DoctorController {
	return &DoctorController{
		DoctorUsecase: doctorUsecase,
		Log:           log,
	}
}

func (c *DoctorController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	page := utils.BuildPaginationRequest(r)
	items, total, err := c.DoctorUsecase.ListDoctors(r.Context(), session, page)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page.Page, page.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListRetrievedSuccess, pagination, items)
}

func (c *DoctorController) GetDoctorByID(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	doctorID := chi.URLParam(r, "doctorID")
	response, err := c.DoctorUsecase.GetDoctorByID(r.Context(), session, doctorID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DetailRetrievedSuccess, response)
}

func (c *DoctorController) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.CreateDoctor)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.DoctorUsecase.CreateDoctor(r.Context(), session, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatedSuccess, response)
}

func (c *DoctorController) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.UpdateDoctor)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	doctorID := chi.URLParam(r, "doctorID")
	response, err := c.DoctorUsecase.UpdateDoctor(r.Context(), session, doctorID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatedSuccess, response)
}

func (c *DoctorController) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	doctorID := chi.URLParam(r, "doctorID")
	err := c.DoctorUsecase.DeleteDoctor(r.Context(), session, doctorID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletedSuccess, nil)
}
