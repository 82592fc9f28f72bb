package session

import (
	"context"

	"github.com/rs/zerolog"
)

// RoleAdmin is the role claim value that unlocks the user-management views.
// The comparison is exact; no case normalization.
const RoleAdmin = "ROLE_ADMIN"

// LoginAPI is the backend collaborator the Manager authenticates against.
type LoginAPI interface {
	// Login exchanges credentials for a bearer token and the account's id.
	// Backend rejections come back as errors and are propagated unmodified.
	Login(ctx context.Context, username, password string) (token, userID string, err error)
}

// Manager owns the session: it is the only writer of the persisted token and
// user id, and the only producer on the authenticated broadcast.
type Manager struct {
	store    *Store
	state    *State
	api      LoginAPI
	navigate func(view string)
	log      zerolog.Logger
}

// NewManager builds a Manager around the given store. The initial
// authenticated value derives from the persisted token. navigate is invoked
// with "login" after a logout; pass nil when no navigation is wanted.
func NewManager(store *Store, api LoginAPI, navigate func(view string), log zerolog.Logger) *Manager {
	return &Manager{
		store:    store,
		state:    NewState(store.Token() != ""),
		api:      api,
		navigate: navigate,
		log:      log,
	}
}

// Login authenticates against the backend, persists the session, and
// broadcasts authenticated=true. Backend rejections propagate to the caller
// unchanged for display.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	token, userID, err := m.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := m.store.Save(token, userID); err != nil {
		return err
	}
	m.state.Set(true)

	m.log.Info().Str("username", username).Msg("logged in")
	return nil
}

// Logout clears the persisted session, broadcasts authenticated=false, and
// navigates to the login view.
func (m *Manager) Logout() error {
	if err := m.store.Clear(); err != nil {
		return err
	}
	m.state.Set(false)

	m.log.Info().Msg("logged out")
	if m.navigate != nil {
		m.navigate("login")
	}
	return nil
}

// UserRole returns the role decoded from the current token. ok is false when
// there is no token or the decode fails; claims are re-decoded on every call,
// never cached.
func (m *Manager) UserRole() (string, bool) {
	claims, ok := DecodeClaims(m.store.Token())
	if !ok {
		return "", false
	}
	return claims.Role, true
}

// IsAdmin reports whether the decoded role equals RoleAdmin exactly.
func (m *Manager) IsAdmin() bool {
	role, ok := m.UserRole()
	return ok && role == RoleAdmin
}

// Token returns the persisted bearer token, or "" when logged out.
func (m *Manager) Token() string {
	return m.store.Token()
}

// UserID returns the persisted user id, or "" when logged out.
func (m *Manager) UserID() string {
	return m.store.UserID()
}

// Authenticated returns the current broadcast value.
func (m *Manager) Authenticated() bool {
	return m.state.Authenticated()
}

// Subscribe registers for authenticated-state changes; the channel replays
// the current value immediately.
func (m *Manager) Subscribe() <-chan bool {
	return m.state.Subscribe()
}

// Unsubscribe releases a subscription obtained from Subscribe.
func (m *Manager) Unsubscribe(ch <-chan bool) {
	m.state.Unsubscribe(ch)
}
