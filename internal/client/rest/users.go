package rest

import (
	"context"
	"net/http"
)

// User is an account as served by GET /api/auth/users. The password never
// round-trips.
type User struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	Contacts []Contact `json:"contacts"`
}

// CreateUserInput is the POST /api/auth/users payload.
type CreateUserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// UpdateUserInput is the PUT /api/auth/users/{id} payload. AdminPassword is
// the acting admin's own password, required by the backend whenever username
// or password changes.
type UpdateUserInput struct {
	Username      string `json:"username,omitempty"`
	Password      string `json:"password,omitempty"`
	AdminPassword string `json:"adminPassword,omitempty"`
	Role          string `json:"role,omitempty"`
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/api/auth/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, input CreateUserInput) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/auth/users", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPut, "/api/auth/users/"+id, input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account and, server-side, all contacts it owns. The
// plain-text response body is discarded.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/auth/users/"+id, nil, nil)
}
