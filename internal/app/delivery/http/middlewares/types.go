package middlewares

import (
	"vaxtrack-service/internal/app/config"
	"vaxtrack-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(log *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            log,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}
