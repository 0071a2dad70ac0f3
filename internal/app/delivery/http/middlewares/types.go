package middlewares

import (
	"medicore-service/internal/app/config"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/services/core/access"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	PatientLinker  *access.PatientLinker
	InternalConfig *config.InternalConfig
}

func New(
	log *zap.Logger,
	sessionService contracts.SessionService,
	patientLinker *access.PatientLinker,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:            log,
		SessionService: sessionService,
		PatientLinker:  patientLinker,
		InternalConfig: internalConfig,
	}
}
