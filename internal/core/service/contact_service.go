package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/contactdesk/contacts-system/internal/core/domain"
	"github.com/contactdesk/contacts-system/internal/core/ports"
)

// ContactService implements contact CRUD with ownership enforcement.
type ContactService struct {
	repo  ports.ContactRepository
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, audit ports.AuditSink, log zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, audit: audit, log: log}
}

// ListContacts returns all contacts for admins, or only the caller's own.
func (s *ContactService) ListContacts(ctx context.Context, caller ports.Caller) ([]domain.Contact, error) {
	if caller.Role == domain.RoleAdmin {
		return s.repo.FindAll(ctx)
	}
	if caller.UserID == "" {
		return []domain.Contact{}, nil
	}
	return s.repo.FindByUserID(ctx, caller.UserID)
}

// GetContact returns one contact. Non-admin callers only see their own; any
// other contact reads as not found rather than forbidden, so ids cannot be
// probed.
func (s *ContactService) GetContact(ctx context.Context, caller ports.Caller, id string) (*domain.Contact, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller.Role != domain.RoleAdmin && contact.UserID != caller.UserID {
		return nil, domain.ErrContactNotFound
	}
	return contact, nil
}

func (s *ContactService) CreateContact(ctx context.Context, caller ports.Caller, input ports.ContactInput) (*domain.Contact, error) {
	now := time.Now().UTC()
	contact := &domain.Contact{
		UserID:       caller.UserID,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		MotherName:   input.MotherName,
		BirthDate:    input.BirthDate,
		TajNumber:    input.TajNumber,
		TaxID:        input.TaxID,
		PhoneNumbers: toPhoneNumbers(input.PhoneNumbers),
		Addresses:    toAddresses(input.Addresses),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, contact)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create contact")
		return nil, err
	}

	s.publishAudit(created.ID, domain.AuditCreated, caller.UserID)
	s.log.Info().Str("contact_id", created.ID).Str("user_id", caller.UserID).Msg("contact created")
	return created, nil
}

// UpdateContact replaces the contact's scalar fields and both entry lists.
func (s *ContactService) UpdateContact(ctx context.Context, caller ports.Caller, id string, input ports.ContactInput) (*domain.Contact, error) {
	contact, err := s.GetContact(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	contact.FirstName = input.FirstName
	contact.LastName = input.LastName
	contact.Email = input.Email
	contact.MotherName = input.MotherName
	contact.BirthDate = input.BirthDate
	contact.TajNumber = input.TajNumber
	contact.TaxID = input.TaxID
	contact.PhoneNumbers = toPhoneNumbers(input.PhoneNumbers)
	contact.Addresses = toAddresses(input.Addresses)
	contact.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}

	s.publishAudit(contact.ID, domain.AuditUpdated, caller.UserID)
	return contact, nil
}

func (s *ContactService) DeleteContact(ctx context.Context, caller ports.Caller, id string) error {
	if _, err := s.GetContact(ctx, caller, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publishAudit(id, domain.AuditDeleted, caller.UserID)
	s.log.Info().Str("contact_id", id).Msg("contact deleted")
	return nil
}

func (s *ContactService) publishAudit(id string, action domain.AuditAction, actorID string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.AuditEventInput{
		Entity:    "contact",
		EntityID:  id,
		Action:    action,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
	})
}

func toPhoneNumbers(numbers []string) []domain.PhoneNumber {
	out := make([]domain.PhoneNumber, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, domain.PhoneNumber{PhoneNumber: n})
	}
	return out
}

func toAddresses(addresses []ports.AddressInput) []domain.Address {
	out := make([]domain.Address, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, domain.Address{Street: a.Street, City: a.City, ZipCode: a.ZipCode})
	}
	return out
}
