package auth

import (
	"context"
	"medicore-service/internal/app/config"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/app/services/core/access"
	"medicore-service/internal/app/services/shared/ratelimiter"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/dto/responses"
	"medicore-service/internal/pkg/exceptions"
	"medicore-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	AccountRepository contracts.AccountRepository
	SessionService    contracts.SessionService
	PatientLinker     *access.PatientLinker
	LoginLimiter      *ratelimiter.LoginLimiter
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewAuthUsecase(
	accountRepository contracts.AccountRepository,
	sessionService contracts.SessionService,
	patientLinker *access.PatientLinker,
	loginLimiter *ratelimiter.LoginLimiter,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		AccountRepository: accountRepository,
		SessionService:    sessionService,
		PatientLinker:     patientLinker,
		LoginLimiter:      loginLimiter,
		InternalConfig:    internalConfig,
		Log:               log,
	}
}

// Register creates an account with its role fixed forever. Anonymous signup
// may only produce patient accounts; staff roles require an admin session.
func (uc *authUsecase) Register(ctx context.Context, requesterRole string, request *requests.Register) (*responses.Register, error) {
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String("email", request.Email),
	)

	role := request.Role
	if role == "" {
		role = constvars.RolePatient
	}
	if role != constvars.RolePatient && requesterRole != constvars.RoleAdmin {
		return nil, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevRoleAssignmentDenied)
	}

	existing, err := uc.AccountRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	account := &models.Account{
		Email:    request.Email,
		Name:     request.Name,
		Password: hashed,
		Role:     role,
		IsActive: true,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	accountID, err := uc.AccountRepository.CreateAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	return &responses.Register{
		AccountID: accountID,
		Role:      role,
	}, nil
}

// Login authenticates, resolves the patient link for patient accounts and
// mints a session. Inactive accounts are blocked unless the role is admin.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String("email", request.Email),
	)

	allowed, err := uc.LoginLimiter.Allow(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, exceptions.ErrTooManyLoginAttempts(nil)
	}

	account, err := uc.AccountRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, exceptions.ErrAccountNotFound(nil)
	}
	if !utils.CheckPasswordHash(request.Password, account.Password) {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}
	if !account.IsActive && account.Role != constvars.RoleAdmin {
		return nil, exceptions.ErrAccountInactive(nil)
	}

	patientID := ""
	if account.Role == constvars.RolePatient {
		patientID, err = uc.PatientLinker.Resolve(ctx, account.Email)
		if err != nil {
			return nil, err
		}
	}

	expTime := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		AccountID: account.ID,
		Email:     account.Email,
		Role:      account.Role,
		PatientID: patientID,
		ExpiresAt: time.Now().Add(expTime),
	}
	err = uc.SessionService.CreateSession(ctx, session)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(session.SessionID, uc.InternalConfig.JWT.Secret, expTime)
	if err != nil {
		return nil, err
	}

	if err := uc.LoginLimiter.Reset(ctx, account.Email); err != nil {
		uc.Log.Warn("authUsecase.Login failed to reset attempt counter",
			zap.String("email", account.Email),
			zap.Error(err),
		)
	}

	return &responses.Login{
		Token:         token,
		Role:          account.Role,
		PatientID:     patientID,
		ProfileLinked: account.Role != constvars.RolePatient || patientID != "",
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)
	return uc.SessionService.DeleteSession(ctx, sessionID)
}
