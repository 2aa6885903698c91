package contracts

import (
	"context"
	"vaxtrack-service/internal/app/models"
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
}
