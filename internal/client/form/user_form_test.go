package form

import (
	"context"
	"errors"
	"testing"

	"github.com/contactdesk/contacts-system/internal/client/rest"
)

func TestUserCreateForm_RequiresUsernameAndPassword(t *testing.T) {
	f := NewUserCreateForm()

	if f.Validate() {
		t.Fatalf("expected invalid")
	}
	if _, ok := f.Errors()["username"]; !ok {
		t.Fatalf("expected username error, got %v", f.Errors())
	}
	if _, ok := f.Errors()["password"]; !ok {
		t.Fatalf("expected password error, got %v", f.Errors())
	}

	f.Username = "bob"
	f.Password = "secret123"
	if !f.Validate() {
		t.Fatalf("expected valid, got %v", f.Errors())
	}
}

func TestUserEditForm_AdminPasswordRequiredOnUsernameChange(t *testing.T) {
	f := NewUserEditForm(&rest.User{ID: "user_1", Username: "bob", Role: "ROLE_USER"})

	// Unchanged draft needs no confirmation.
	if !f.Validate() {
		t.Fatalf("unchanged draft should validate, got %v", f.Errors())
	}

	f.Username = "robert"
	if f.Validate() {
		t.Fatalf("expected invalid without admin password")
	}
	if _, ok := f.Errors()["adminPassword"]; !ok {
		t.Fatalf("expected adminPassword error, got %v", f.Errors())
	}

	f.AdminPassword = "adminpw99"
	if !f.Validate() {
		t.Fatalf("expected valid with admin password, got %v", f.Errors())
	}
}

func TestUserEditForm_AdminPasswordRequiredOnPasswordChange(t *testing.T) {
	f := NewUserEditForm(&rest.User{ID: "user_1", Username: "bob", Role: "ROLE_USER"})
	f.Password = "newpass99"

	if f.Validate() {
		t.Fatalf("expected invalid without admin password")
	}

	f.AdminPassword = "adminpw99"
	if !f.Validate() {
		t.Fatalf("expected valid, got %v", f.Errors())
	}
}

func TestUserEditForm_SubmitBlockedLocallyMakesNoCall(t *testing.T) {
	f := NewUserEditForm(&rest.User{ID: "user_1", Username: "bob"})
	f.Password = "newpass99" // admin password missing
	calls := 0

	err := f.Submit(context.Background(), func(context.Context, rest.UpdateUserInput) error {
		calls++
		return nil
	})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("invalid draft must not be sent, got %d calls", calls)
	}
}

func TestUserEditForm_SubmitSendsAdminPassword(t *testing.T) {
	f := NewUserEditForm(&rest.User{ID: "user_1", Username: "bob"})
	f.Username = "robert"
	f.AdminPassword = "adminpw99"

	err := f.Submit(context.Background(), func(_ context.Context, input rest.UpdateUserInput) error {
		if input.Username != "robert" || input.AdminPassword != "adminpw99" {
			t.Fatalf("unexpected payload: %+v", input)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if f.State() != Pristine {
		t.Fatalf("expected Pristine after success, got %v", f.State())
	}
}

func TestUserCreateForm_RemoteDuplicateMergesIntoForm(t *testing.T) {
	f := NewUserCreateForm()
	f.Username = "bob"
	f.Password = "secret123"
	remote := &rest.APIError{StatusCode: 400, Fields: map[string]string{"username": "already taken"}}

	_ = f.Submit(context.Background(), func(context.Context, rest.CreateUserInput) error {
		return remote
	})

	if f.Errors()["username"] != "already taken" {
		t.Fatalf("expected merged server error, got %v", f.Errors())
	}
	if !f.Touched("username") {
		t.Fatalf("server-named field must be touched")
	}
}
