package ports

import (
	"context"

	"github.com/contactdesk/contacts-system/internal/core/domain"
)

// CreateUserInput carries all data needed to create an account.
type CreateUserInput struct {
	Username string
	Password string
	Role     string // defaults to ROLE_USER when empty
}

// UpdateUserInput carries a partial account update. Username and Password are
// applied only when non-empty. AdminPassword is the prior-password
// confirmation: it must verify against the acting admin's stored hash whenever
// the username changes or a new password is supplied.
type UpdateUserInput struct {
	Username      string
	Password      string
	AdminPassword string
	Role          string
}

// UserService defines admin-facing account operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	// UpdateUser applies input to the user identified by id. actorUsername is
	// the admin performing the change, used for the prior-password check.
	UpdateUser(ctx context.Context, id string, actorUsername string, input UpdateUserInput) (*domain.User, error)
	// DeleteUser removes the user and, cascading, all of their contacts.
	DeleteUser(ctx context.Context, id string) error
}
