package payments

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

type PaymentController struct {
	PaymentUsecase contracts.PaymentUsecase
	Log            *zap.Logger
}

func NewPaymentController(paymentUsecase contracts.PaymentUsecase, log *zap.Logger) *PaymentController {
	return &PaymentController{
		PaymentUsecase: paymentUsecase,
		Log:            log,
	}
}

func (c *PaymentController) ListPayments(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	if session.Role == constvars.RolePatient && !session.PatientLinked() {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientProfileNotLinked, &responses.PatientScopedList{
			ProfileLinked: false,
			Message:       constvars.PatientProfileNotLinked,
			Items:         []responses.Payment{},
		})
		return
	}

	page := utils.BuildPaginationRequest(r)
	items, total, err := c.PaymentUsecase.ListPayments(r.Context(), session, page)
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

func (c *PaymentController) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	paymentID := chi.URLParam(r, "paymentID")
	response, err := c.PaymentUsecase.GetPaymentByID(r.Context(), session, paymentID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DetailRetrievedSuccess, response)
}

func (c *PaymentController) CreatePayment(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.CreatePayment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.PaymentUsecase.CreatePayment(r.Context(), session, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatedSuccess, response)
}

func (c *PaymentController) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.UpdatePaymentStatus)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	paymentID := chi.URLParam(r, "paymentID")
	response, err := c.PaymentUsecase.UpdatePaymentStatus(r.Context(), session, paymentID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatedSuccess, response)
}

func (c *PaymentController) DeletePayment(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	paymentID := chi.URLParam(r, "paymentID")
	err := c.PaymentUsecase.DeletePayment(r.Context(), session, paymentID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletedSuccess, nil)
}

func (c *PaymentController) ExportReceipt(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	paymentID := chi.URLParam(r, "paymentID")
	response, err := c.PaymentUsecase.ExportReceipt(r.Context(), session, paymentID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReceiptGeneratedSuccess, response)
}
