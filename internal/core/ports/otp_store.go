package ports

import "context"

// OTPStore holds one-time password-reset codes keyed by account email.
// Codes expire on their own; Verify never returns an expired code as valid.
type OTPStore interface {
	Set(ctx context.Context, email, code string) error
	Verify(ctx context.Context, email, code string) (bool, error)
	Delete(ctx context.Context, email string) error
}
