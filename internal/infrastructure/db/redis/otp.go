package redis

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const otpTTL = 10 * time.Minute

// OTPStore holds password-reset codes in Redis with a fixed TTL.
// Key format: otp:<email>
type OTPStore struct {
	client *redis.Client
}

// NewOTPStore creates an OTPStore wrapping the given Redis client.
func NewOTPStore(client *redis.Client) *OTPStore {
	return &OTPStore{client: client}
}

// Set stores the code for email, replacing any previous one and resetting the TTL.
func (s *OTPStore) Set(ctx context.Context, email, code string) error {
	if err := s.client.Set(ctx, s.key(email), code, otpTTL).Err(); err != nil {
		return fmt.Errorf("otp set: %w", err)
	}
	return nil
}

// Verify reports whether code matches the stored, unexpired code for email.
// A missing key (never issued or expired) is a mismatch, not an error.
func (s *OTPStore) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.client.Get(ctx, s.key(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("otp get: %w", err)
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(code)) == 1, nil
}

// Delete removes the code so it cannot be replayed after a successful reset.
func (s *OTPStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, s.key(email)).Err(); err != nil {
		return fmt.Errorf("otp delete: %w", err)
	}
	return nil
}

func (s *OTPStore) key(email string) string {
	return "otp:" + email
}
