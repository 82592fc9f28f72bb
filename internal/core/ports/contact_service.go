package ports

import (
	"context"

	"github.com/contactdesk/contacts-system/internal/core/domain"
)

// AddressInput holds one postal address entry.
type AddressInput struct {
	Street  string
	City    string
	ZipCode string
}

// ContactInput carries all editable fields of a contact. Updates replace the
// scalar fields and both entry lists wholesale.
type ContactInput struct {
	FirstName    string
	LastName     string
	Email        string
	MotherName   string
	BirthDate    string
	TajNumber    string
	TaxID        string
	PhoneNumbers []string
	Addresses    []AddressInput
}

// Caller identifies the authenticated principal performing an operation.
// Admins see every contact; regular users only their own.
type Caller struct {
	UserID string
	Role   string
}

// ContactService defines use-case operations for contacts.
type ContactService interface {
	// ListContacts returns the full contact documents visible to the caller.
	ListContacts(ctx context.Context, caller Caller) ([]domain.Contact, error)
	// GetContact returns one contact, enforcing ownership for non-admins.
	GetContact(ctx context.Context, caller Caller, id string) (*domain.Contact, error)
	CreateContact(ctx context.Context, caller Caller, input ContactInput) (*domain.Contact, error)
	UpdateContact(ctx context.Context, caller Caller, id string, input ContactInput) (*domain.Contact, error)
	DeleteContact(ctx context.Context, caller Caller, id string) error
}
