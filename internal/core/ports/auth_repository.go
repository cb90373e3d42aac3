package ports

import (
	"context"

	"github.com/peopledesk/hr-api/internal/core/domain"
)

// AccountRepository defines persistence operations for user accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
