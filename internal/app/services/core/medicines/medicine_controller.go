package medicines

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

type MedicineController struct {
	MedicineUsecase contracts.MedicineUsecase
	Log             *zap.Logger
}

func NewMedicineController(medicineUsecase contracts.MedicineUsecase, log *zap.Logger) *MedicineController {
	return &MedicineController{
		MedicineUsecase: medicineUsecase,
		Log:             log,
	}
}

func (c *MedicineController) ListMedicines(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	page := utils.BuildPaginationRequest(r)
	items, total, err := c.MedicineUsecase.ListMedicines(r.Context(), session, page)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page.Page, page.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListRetrievedSuccess, pagination, items)
}

func (c *MedicineController) GetMedicineByID(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	medicineID := chi.URLParam(r, "medicineID")
	response, err := c.MedicineUsecase.GetMedicineByID(r.Context(), session, medicineID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DetailRetrievedSuccess, response)
}

func (c *MedicineController) CreateMedicine(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.CreateMedicine)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.MedicineUsecase.CreateMedicine(r.Context(), session, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatedSuccess, response)
}

func (c *MedicineController) UpdateMedicine(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.UpdateMedicine)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	medicineID := chi.URLParam(r, "medicineID")
	response, err := c.MedicineUsecase.UpdateMedicine(r.Context(), session, medicineID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatedSuccess, response)
}

func (c *MedicineController) DeleteMedicine(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	medicineID := chi.URLParam(r, "medicineID")
	err := c.MedicineUsecase.DeleteMedicine(r.Context(), session, medicineID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletedSuccess, nil)
}
