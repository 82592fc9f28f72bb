package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/contactdesk/contacts-system/internal/core/domain"
)

func seedUser(t *testing.T, repo *stubUserRepo, username, password, role string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{}
	seeded := seedUser(t, repo, "admin", "secret123", domain.RoleAdmin)
	svc := NewAuthService(repo, throttle, "test-secret", time.Hour, zerolog.Nop())

	result, err := svc.Login(context.Background(), "admin", "secret123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.UserID != seeded.ID {
		t.Fatalf("expected user id %s, got %s", seeded.ID, result.UserID)
	}
	if result.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", result.Role)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected throttle reset, got %d", throttle.resets)
	}
}

func TestAuthService_Login_TokenClaims(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "alice", "pw123456", domain.RoleUser)
	svc := NewAuthService(repo, &stubThrottle{}, "test-secret", time.Hour, zerolog.Nop())

	result, err := svc.Login(context.Background(), "alice", "pw123456")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	token, err := jwt.Parse(result.Token, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("expected map claims, got %T", token.Claims)
	}
	if claims["sub"] != "alice" {
		t.Fatalf("unexpected sub claim: %v", claims["sub"])
	}
	if claims["role"] != domain.RoleUser {
		t.Fatalf("unexpected role claim: %v", claims["role"])
	}
	if claims["userId"] != seeded.ID {
		t.Fatalf("unexpected userId claim: %v", claims["userId"])
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("missing exp claim")
	}
	if remaining := time.Until(time.Unix(int64(exp), 0)); remaining < 55*time.Minute || remaining > time.Hour {
		t.Fatalf("unexpected token lifetime: %v", remaining)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{}
	seedUser(t, repo, "alice", "pw123456", domain.RoleUser)
	svc := NewAuthService(repo, throttle, "test-secret", time.Hour, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "alice", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failures != 1 {
		t.Fatalf("expected a recorded failure, got %d", throttle.failures)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{}
	svc := NewAuthService(repo, throttle, "test-secret", time.Hour, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "ghost", "whatever"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if throttle.failures != 1 {
		t.Fatalf("expected a recorded failure, got %d", throttle.failures)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), &stubThrottle{}, "test-secret", time.Hour, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "", "pw"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "alice", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "pw123456", domain.RoleUser)
	svc := NewAuthService(repo, &stubThrottle{blocked: true}, "test-secret", time.Hour, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "alice", "pw123456"); err != domain.ErrTooManyLoginAttempts {
		t.Fatalf("expected ErrTooManyLoginAttempts, got %v", err)
	}
}
