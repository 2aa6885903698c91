package contracts

import (
	"context"
	"vaxtrack-service/internal/pkg/dto/requests"
	"vaxtrack-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterPractitioner) (*responses.RegisterPractitioner, error)
	Login(ctx context.Context, request *requests.LoginPractitioner) (*responses.LoginPractitioner, error)
	Logout(ctx context.Context, bearerToken string) error
	ResolveIdentity(ctx context.Context, bearerToken string) (identityToken string, err error)
}
