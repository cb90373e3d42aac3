package ports

import (
	"context"

	"github.com/peopledesk/hr-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at account registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	// Role defaults to user when empty.
	Role string
}

// AuthService defines the account use cases: registration, login, account
// lookup, and the OTP-based password reset flow.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	// SendPasswordOTP mints a one-time code for the account and mails it.
	SendPasswordOTP(ctx context.Context, email string) error
	// ChangePassword consumes the OTP and replaces the account password.
	ChangePassword(ctx context.Context, email, otp, newPassword string) error
}
