package auth

import (
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/exceptions"
	"medicore-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	AuthUsecase contracts.AuthUsecase
	Log         *zap.Logger
}

func NewAuthController(authUsecase contracts.AuthUsecase, log *zap.Logger) *AuthController {
	return &AuthController{
		AuthUsecase: authUsecase,
		Log:         log,
	}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Register)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeRegisterRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	// Registration is reachable both anonymously and from an admin session.
	requesterRole := ""
	if session := utils.GetSessionFromContext(r.Context()); session != nil {
		requesterRole = session.Role
	}

	response, err := c.AuthUsecase.Register(r.Context(), requesterRole, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterSuccess, response)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Login)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeLoginRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.AuthUsecase.Login(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, response)
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	err := c.AuthUsecase.Logout(r.Context(), session.SessionID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}
