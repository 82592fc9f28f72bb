package form

import (
	"context"

	"github.com/contactdesk/contacts-system/internal/client/rest"
	"github.com/contactdesk/contacts-system/internal/client/validation"
)

// UserCreateForm drives the new-account flow.
type UserCreateForm struct {
	core

	Username string
	Password string
	Role     string
}

func NewUserCreateForm() *UserCreateForm {
	return &UserCreateForm{core: newCore()}
}

func (f *UserCreateForm) Validate() bool {
	f.beginValidation()

	if !validation.Required(f.Username) {
		f.errors["username"] = "username is required"
	}
	if !validation.Required(f.Password) {
		f.errors["password"] = "password is required"
	}

	return f.finishValidation()
}

func (f *UserCreateForm) Submit(ctx context.Context, save func(context.Context, rest.CreateUserInput) error) error {
	if !f.Validate() {
		f.state = FailedLocal
		return ErrInvalid
	}

	f.state = Submitting
	if err := save(ctx, rest.CreateUserInput{Username: f.Username, Password: f.Password, Role: f.Role}); err != nil {
		f.failRemote(err, f.isKnownField)
		return err
	}

	f.reset()
	return nil
}

func (f *UserCreateForm) isKnownField(name string) bool {
	switch name {
	case "username", "password", "role":
		return true
	}
	return false
}

// UserEditForm drives the account-edit flow. Changing the username or
// entering a new password requires the acting admin to supply their own
// password in AdminPassword; the form enforces this before anything is sent.
type UserEditForm struct {
	core

	originalUsername string

	Username      string
	Password      string
	AdminPassword string
	Role          string
}

// NewUserEditForm copies the account into a fresh draft.
func NewUserEditForm(user *rest.User) *UserEditForm {
	return &UserEditForm{
		core:             newCore(),
		originalUsername: user.Username,
		Username:         user.Username,
		Role:             user.Role,
	}
}

// needsAdminPassword reports whether this draft's changes require the prior
// password confirmation.
func (f *UserEditForm) needsAdminPassword() bool {
	return f.Username != f.originalUsername || f.Password != ""
}

func (f *UserEditForm) Validate() bool {
	f.beginValidation()

	if !validation.Required(f.Username) {
		f.errors["username"] = "username is required"
	}
	if f.needsAdminPassword() && !validation.Required(f.AdminPassword) {
		f.errors["adminPassword"] = "your password is required to change username or password"
	}

	return f.finishValidation()
}

func (f *UserEditForm) Submit(ctx context.Context, save func(context.Context, rest.UpdateUserInput) error) error {
	if !f.Validate() {
		f.state = FailedLocal
		return ErrInvalid
	}

	f.state = Submitting
	input := rest.UpdateUserInput{
		Username:      f.Username,
		Password:      f.Password,
		AdminPassword: f.AdminPassword,
		Role:          f.Role,
	}
	if err := save(ctx, input); err != nil {
		f.failRemote(err, f.isKnownField)
		return err
	}

	f.reset()
	return nil
}

func (f *UserEditForm) isKnownField(name string) bool {
	switch name {
	case "username", "password", "adminPassword", "role":
		return true
	}
	return false
}
