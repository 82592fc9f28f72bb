// Package rest wraps the backend's HTTP API. Every endpoint returns either a
// decoded value or an *APIError; transport failures surface as plain errors.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// TokenSource supplies the bearer token attached to outgoing requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// APIError is a non-2xx response from the backend. For validation failures
// (400 with a field-keyed JSON body) Fields carries one message per field;
// for everything else Message holds whatever the body offered, with a
// generic fallback.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for field, msg := range e.Fields {
			parts = append(parts, field+": "+msg)
		}
		return fmt.Sprintf("api error %d: %s", e.StatusCode, strings.Join(parts, "; "))
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to the backend. Paths are fixed by the API contract; only the
// base host varies.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client whose requests carry the token from tokens, when
// present. Pass nil to skip the auth header entirely.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &bearerTransport{base: http.DefaultTransport, tokens: tokens},
		},
	}
}

// bearerTransport attaches the bearer token to every outgoing request.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.tokens != nil {
		if token := t.tokens.Token(); token != "" {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return t.base.RoundTrip(req)
}

// do runs one request/response cycle. A nil out discards the response body
// (used by deletes, whose bodies are plain text).
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("rest: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("rest: build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("rest: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("rest: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("rest: decode response: %w", err)
	}
	return nil
}

const genericErrorMessage = "request failed"

// parseAPIError classifies a non-2xx body. A 400 whose JSON object carries no
// "error" envelope is the validation shape: every key is a field name.
func parseAPIError(status int, body []byte) *APIError {
	var object map[string]string
	if err := json.Unmarshal(body, &object); err != nil || len(object) == 0 {
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = genericErrorMessage
		}
		return &APIError{StatusCode: status, Message: msg}
	}

	if msg, ok := object["error"]; ok {
		return &APIError{StatusCode: status, Message: msg}
	}
	if msg, ok := object["message"]; ok {
		return &APIError{StatusCode: status, Message: msg}
	}
	if status == http.StatusBadRequest {
		return &APIError{StatusCode: status, Fields: object}
	}

	return &APIError{StatusCode: status, Message: genericErrorMessage}
}
