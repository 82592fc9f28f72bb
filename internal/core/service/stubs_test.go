package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/contactdesk/contacts-system/internal/core/domain"
	"github.com/contactdesk/contacts-system/internal/core/ports"
)

// --- Shared in-memory stubs used across the service tests ---

type stubUserRepo struct {
	mu     sync.Mutex
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := cloneUser(user)
	if copy.ID == "" {
		r.nextID++
		copy.ID = "user_" + strconv.Itoa(r.nextID)
	}
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubContactRepo struct {
	mu       sync.Mutex
	contacts map[string]*domain.Contact
	nextID   int
}

func newStubContactRepo() *stubContactRepo {
	return &stubContactRepo{contacts: make(map[string]*domain.Contact)}
}

func cloneContact(c *domain.Contact) *domain.Contact {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubContactRepo) FindAll(_ context.Context) ([]domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		out = append(out, *cloneContact(c))
	}
	return out, nil
}

func (r *stubContactRepo) FindByUserID(_ context.Context, userID string) ([]domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Contact, 0)
	for _, c := range r.contacts {
		if c.UserID == userID {
			out = append(out, *cloneContact(c))
		}
	}
	return out, nil
}

func (r *stubContactRepo) FindByID(_ context.Context, id string) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contacts[id]
	if !ok {
		return nil, domain.ErrContactNotFound
	}
	return cloneContact(c), nil
}

func (r *stubContactRepo) Create(_ context.Context, contact *domain.Contact) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := cloneContact(contact)
	if copy.ID == "" {
		r.nextID++
		copy.ID = "contact_" + strconv.Itoa(r.nextID)
	}
	r.contacts[copy.ID] = cloneContact(copy)
	return copy, nil
}

func (r *stubContactRepo) Update(_ context.Context, contact *domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contacts[contact.ID]; !ok {
		return domain.ErrContactNotFound
	}
	r.contacts[contact.ID] = cloneContact(contact)
	return nil
}

func (r *stubContactRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contacts[id]; !ok {
		return domain.ErrContactNotFound
	}
	delete(r.contacts, id)
	return nil
}

func (r *stubContactRepo) DeleteByUserID(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, c := range r.contacts {
		if c.UserID == userID {
			delete(r.contacts, id)
			removed++
		}
	}
	return removed, nil
}

type stubThrottle struct {
	blocked  bool
	failures int
	resets   int
}

func (t *stubThrottle) TooMany(_ context.Context, _ string) (bool, error) { return t.blocked, nil }
func (t *stubThrottle) RecordFailure(_ context.Context, _ string) error {
	t.failures++
	return nil
}
func (t *stubThrottle) Reset(_ context.Context, _ string) error {
	t.resets++
	return nil
}

type stubAuditSink struct {
	mu     sync.Mutex
	events []ports.AuditEventInput
}

func (s *stubAuditSink) Enqueue(event ports.AuditEventInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *stubAuditSink) recorded() []ports.AuditEventInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.AuditEventInput, len(s.events))
	copy(out, s.events)
	return out
}
