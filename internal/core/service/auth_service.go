package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/peopledesk/hr-api/internal/core/domain"
	"github.com/peopledesk/hr-api/internal/core/ports"
)

const minPasswordLength = 6

// AuthService implements registration, login, account lookup, and the
// OTP-based password reset flow.
type AuthService struct {
	repo   ports.AccountRepository
	tokens ports.TokenService
	otps   ports.OTPStore
	mailer ports.Mailer
	logger zerolog.Logger
}

func NewAuthService(
	repo ports.AccountRepository,
	tokens ports.TokenService,
	otps ports.OTPStore,
	mailer ports.Mailer,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, otps: otps, mailer: mailer, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
	if input.Email == "" || len(input.Password) < minPasswordLength {
		return nil, domain.ErrInvalidCredentials
	}

	role := domain.Role(input.Role)
	if input.Role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Name:         input.Name,
		Email:        strings.ToLower(input.Email),
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("account registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID, account.Email, account.Role)
	if err != nil {
		return "", nil, err
	}

	return token, account, nil
}

func (s *AuthService) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

// SendPasswordOTP mints a six-digit code, stores it with a TTL, and hands the
// mail off for delivery. The code is never logged.
func (s *AuthService) SendPasswordOTP(ctx context.Context, email string) error {
	account, err := s.repo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return err
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}

	if err := s.otps.Set(ctx, account.Email, code); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	msg := ports.MailMessage{
		To:      account.Email,
		Subject: "Your password reset code",
		Body:    fmt.Sprintf("Use this code to reset your password: %s\nIt expires in 10 minutes.", code),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send otp mail: %w", err)
	}

	s.logger.Info().Str("email", account.Email).Msg("password reset OTP issued")
	return nil
}

// ChangePassword consumes a valid OTP and replaces the account password.
// The code is single use: it is deleted once the password is updated.
func (s *AuthService) ChangePassword(ctx context.Context, email, otp, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return err
	}

	ok, err := s.otps.Verify(ctx, account.Email, otp)
	if err != nil {
		return fmt.Errorf("verify otp: %w", err)
	}
	if !ok {
		return domain.ErrInvalidOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, account.ID, string(hash)); err != nil {
		return err
	}

	if err := s.otps.Delete(ctx, account.Email); err != nil {
		s.logger.Warn().Err(err).Str("email", account.Email).Msg("failed to delete consumed OTP")
	}

	s.logger.Info().Str("email", account.Email).Msg("password changed via OTP")
	return nil
}

// generateOTP returns a uniformly random six-digit code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
