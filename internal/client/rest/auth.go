package rest

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// Login exchanges credentials for a bearer token and the account's id. This
// satisfies session.LoginAPI.
func (c *Client) Login(ctx context.Context, username, password string) (string, string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.UserID, nil
}
