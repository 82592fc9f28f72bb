package ports

import (
	"context"

	"github.com/contactdesk/contacts-system/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// Delete removes the user document. Contact cleanup is the service's job.
	Delete(ctx context.Context, id string) error
}
