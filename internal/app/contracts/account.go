package contracts

import (
	"context"
	"medicore-service/internal/app/models"
)

type AccountRepository interface {
	CreateAccount(ctx context.Context, account *models.Account) (accountID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByID(ctx context.Context, accountID string) (*models.Account, error)
}
