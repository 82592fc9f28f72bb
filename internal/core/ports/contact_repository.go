package ports

import (
	"context"

	"github.com/contactdesk/contacts-system/internal/core/domain"
)

// ContactRepository defines persistence operations for contacts.
type ContactRepository interface {
	FindAll(ctx context.Context) ([]domain.Contact, error)
	// FindByUserID returns all contacts owned by the given user.
	FindByUserID(ctx context.Context, userID string) ([]domain.Contact, error)
	FindByID(ctx context.Context, id string) (*domain.Contact, error)
	Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	Update(ctx context.Context, contact *domain.Contact) error
	Delete(ctx context.Context, id string) error
	// DeleteByUserID removes every contact owned by the user and returns the
	// number of documents deleted. Used by the cascading user delete.
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
}
