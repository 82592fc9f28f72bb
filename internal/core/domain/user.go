package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")
var ErrAdminPasswordRequired = errors.New("admin password is required when changing username or password")
var ErrAdminPasswordIncorrect = errors.New("admin password is incorrect")
var ErrTooManyLoginAttempts = errors.New("too many failed login attempts")

// User models an account in the system. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Contacts     []Contact `json:"contacts,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user carries the admin role.
// The comparison is exact: no case folding, no prefix matching.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
