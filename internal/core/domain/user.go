package domain

import (
	"errors"
	"time"
)

// Role is the closed set of access levels carried in token claims.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// IsAdmin centralizes the admin check so role strings are never compared at
// call sites.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

var ErrAccountNotFound = errors.New("account not found")
var ErrAccountExists = errors.New("account already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidOTP = errors.New("invalid or expired OTP")
var ErrInvalidToken = errors.New("invalid token")
var ErrServerMisconfigured = errors.New("token is not configured")

// Account models an authenticated actor in the system.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims is the verified credential payload attached to a request. It lives
// only for the duration of the request and is never persisted.
type Claims struct {
	ID    string
	Email string
	Role  Role
}
