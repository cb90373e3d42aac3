package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/peopledesk/hr-api/internal/core/domain"
)

// userClaim is the identity payload nested under the "user" key. The nesting
// matches the wire format the account frontend already consumes.
type userClaim struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type tokenClaims struct {
	User userClaim `json:"user"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 bearer credentials with a
// process-wide secret loaded once at startup.
type TokenService struct {
	secret string
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue produces a signed token encoding id, email, and role plus expiry.
func (s *TokenService) Issue(id, email string, role domain.Role) (string, error) {
	if s.secret == "" {
		return "", domain.ErrServerMisconfigured
	}

	now := time.Now().UTC()
	claims := tokenClaims{
		User: userClaim{ID: id, Email: email, Role: string(role)},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

// Verify parses and validates a token. Malformed, expired, and badly signed
// tokens are all reported as ErrInvalidToken; callers cannot distinguish them.
func (s *TokenService) Verify(token string) (domain.Claims, error) {
	if s.secret == "" {
		return domain.Claims{}, domain.ErrServerMisconfigured
	}

	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil || !parsed.Valid {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	role := domain.Role(claims.User.Role)
	if !role.Valid() {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	return domain.Claims{
		ID:    claims.User.ID,
		Email: claims.User.Email,
		Role:  role,
	}, nil
}
