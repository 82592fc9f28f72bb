package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/contactdesk/contacts-system/internal/core/domain"
	"github.com/contactdesk/contacts-system/internal/core/ports"
)

// UserService implements admin account management.
type UserService struct {
	users    ports.UserRepository
	contacts ports.ContactRepository
	audit    ports.AuditSink
	log      zerolog.Logger
}

func NewUserService(users ports.UserRepository, contacts ports.ContactRepository, audit ports.AuditSink, log zerolog.Logger) *UserService {
	return &UserService{users: users, contacts: contacts, audit: audit, log: log}
}

// ListUsers returns every account, with the owned contacts attached so the
// admin view can render them inline.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	for i := range users {
		contacts, err := s.contacts.FindByUserID(ctx, users[i].ID)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", users[i].ID).Msg("failed to load user contacts")
			continue
		}
		users[i].Contacts = contacts
	}

	return users, nil
}

func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("create user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.publishAudit("user", created.ID, domain.AuditCreated, "")
	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user created")
	return created, nil
}

// UpdateUser applies a partial update. Changing the username or setting a new
// password requires the acting admin's own password as confirmation; the
// check runs before any write.
func (s *UserService) UpdateUser(ctx context.Context, id string, actorUsername string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changingUsername := input.Username != "" && input.Username != user.Username
	changingPassword := input.Password != ""

	if changingUsername || changingPassword {
		if input.AdminPassword == "" {
			return nil, domain.ErrAdminPasswordRequired
		}
		actor, err := s.users.FindByUsername(ctx, actorUsername)
		if err != nil {
			return nil, fmt.Errorf("update user: load actor: %w", err)
		}
		if bcrypt.CompareHashAndPassword([]byte(actor.PasswordHash), []byte(input.AdminPassword)) != nil {
			return nil, domain.ErrAdminPasswordIncorrect
		}
	}

	if changingUsername {
		existing, err := s.users.FindByUsername(ctx, input.Username)
		if err == nil && existing.ID != id {
			return nil, domain.ErrUserExists
		} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("update user: %w", err)
		}
		user.Username = input.Username
	}

	if changingPassword {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if input.Role != "" {
		user.Role = input.Role
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.publishAudit("user", user.ID, domain.AuditUpdated, "")
	s.log.Info().Str("user_id", user.ID).Msg("user updated")
	return user, nil
}

// DeleteUser removes the account and every contact it owns. The cascade runs
// server-side; clients only trigger it.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}

	removed, err := s.contacts.DeleteByUserID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: cascade contacts: %w", err)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.publishAudit("user", id, domain.AuditDeleted, "")
	s.log.Info().Str("user_id", id).Int64("contacts_removed", removed).Msg("user deleted")
	return nil
}

func (s *UserService) publishAudit(entity, id string, action domain.AuditAction, actorID string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.AuditEventInput{
		Entity:    entity,
		EntityID:  id,
		Action:    action,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
	})
}
