package ports

import "context"

// LoginResult carries everything the client needs after a successful login.
// The role is also embedded in the token claims; it is returned separately so
// callers do not have to decode the token.
type LoginResult struct {
	Token  string
	UserID string
	Role   string
}

// AuthService authenticates credentials and issues bearer tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
