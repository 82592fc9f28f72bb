package controller

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/contactdesk/contacts-system/internal/client/form"
	"github.com/contactdesk/contacts-system/internal/client/rest"
)

// pageSize is the fixed number of users shown per page.
const pageSize = 3

// UserAPI is the backend collaborator the user list talks to.
type UserAPI interface {
	ListUsers(ctx context.Context) ([]rest.User, error)
	CreateUser(ctx context.Context, input rest.CreateUserInput) (*rest.User, error)
	UpdateUser(ctx context.Context, id string, input rest.UpdateUserInput) (*rest.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// adminRole matches the role claim; admin accounts are hidden from the list.
const adminRole = "ROLE_ADMIN"

// UserList holds the user-management view's state: the filtered account list,
// page position, row expansion, and the active edit draft.
type UserList struct {
	api     UserAPI
	confirm ConfirmFunc
	log     zerolog.Logger

	Users []rest.User
	page  int

	expanded map[string]struct{}

	draft     *form.UserEditForm
	editingID string
}

func NewUserList(api UserAPI, confirm ConfirmFunc, log zerolog.Logger) *UserList {
	return &UserList{
		api:      api,
		confirm:  confirm,
		log:      log,
		expanded: make(map[string]struct{}),
	}
}

// Load fetches all accounts, filters out admins, and clamps the current page
// in case the list shrank. On failure the list stays empty and the error is
// logged; there is no retry.
func (u *UserList) Load(ctx context.Context) {
	users, err := u.api.ListUsers(ctx)
	if err != nil {
		u.log.Error().Err(err).Msg("failed to load users")
		u.Users = nil
		u.page = 0
		return
	}

	filtered := make([]rest.User, 0, len(users))
	for _, user := range users {
		if user.Role == adminRole {
			continue
		}
		filtered = append(filtered, user)
	}
	u.Users = filtered
	u.clampPage()
}

// TotalPages returns ceil(len(Users) / pageSize).
func (u *UserList) TotalPages() int {
	return (len(u.Users) + pageSize - 1) / pageSize
}

// Page returns the current zero-based page index.
func (u *UserList) Page() int {
	return u.page
}

// SetPage moves to the requested page; out-of-range values are a no-op.
func (u *UserList) SetPage(page int) {
	if page < 0 || page >= u.TotalPages() {
		return
	}
	u.page = page
}

// NextPage advances one page; past the last page it is a no-op.
func (u *UserList) NextPage() {
	u.SetPage(u.page + 1)
}

// PrevPage goes back one page; before the first page it is a no-op.
func (u *UserList) PrevPage() {
	u.SetPage(u.page - 1)
}

// PageUsers returns the slice of users visible on the current page.
func (u *UserList) PageUsers() []rest.User {
	start := u.page * pageSize
	if start >= len(u.Users) {
		return nil
	}
	end := start + pageSize
	if end > len(u.Users) {
		end = len(u.Users)
	}
	return u.Users[start:end]
}

// clampPage pulls the current page back to the last valid index whenever the
// list shrinks below the current page's range.
func (u *UserList) clampPage() {
	last := u.TotalPages() - 1
	if last < 0 {
		last = 0
	}
	if u.page > last {
		u.page = last
	}
}

// RowClicked toggles the row's contact detail view unless an inner control
// already consumed the event.
func (u *UserList) RowClicked(id string, ev *Event) {
	if ev.PropagationStopped() {
		return
	}
	if _, ok := u.expanded[id]; ok {
		delete(u.expanded, id)
		return
	}
	u.expanded[id] = struct{}{}
}

// Expanded reports whether the row's detail view is open.
func (u *UserList) Expanded(id string) bool {
	_, ok := u.expanded[id]
	return ok
}

// EditClicked opens an edit draft for the account. The event is consumed so
// the row does not also toggle.
func (u *UserList) EditClicked(id string, ev *Event) {
	ev.StopPropagation()

	for i := range u.Users {
		if u.Users[i].ID == id {
			u.draft = form.NewUserEditForm(&u.Users[i])
			u.editingID = id
			return
		}
	}
}

// Draft returns the active edit draft, or nil.
func (u *UserList) Draft() *form.UserEditForm {
	return u.draft
}

// CancelEdit discards the draft without calling the backend.
func (u *UserList) CancelEdit() {
	u.draft = nil
	u.editingID = ""
}

// SubmitDraft sends the draft update and refreshes the list on success.
func (u *UserList) SubmitDraft(ctx context.Context) error {
	if u.draft == nil {
		return nil
	}

	id := u.editingID
	err := u.draft.Submit(ctx, func(ctx context.Context, input rest.UpdateUserInput) error {
		_, err := u.api.UpdateUser(ctx, id, input)
		return err
	})
	if err != nil {
		return err
	}

	u.draft = nil
	u.editingID = ""
	u.Load(ctx)
	return nil
}

// CreateUser submits a create form and refreshes the list on success.
func (u *UserList) CreateUser(ctx context.Context, f *form.UserCreateForm) error {
	err := f.Submit(ctx, func(ctx context.Context, input rest.CreateUserInput) error {
		_, err := u.api.CreateUser(ctx, input)
		return err
	})
	if err != nil {
		return err
	}
	u.Load(ctx)
	return nil
}

// DeleteClicked asks for confirmation and, only when granted, deletes the
// account (the backend cascades to its contacts) and refreshes the list.
func (u *UserList) DeleteClicked(ctx context.Context, id string, ev *Event) error {
	ev.StopPropagation()

	if u.confirm == nil || !u.confirm("Delete this user and all their contacts?") {
		return nil
	}

	if err := u.api.DeleteUser(ctx, id); err != nil {
		u.log.Error().Err(err).Str("user_id", id).Msg("failed to delete user")
		return err
	}

	delete(u.expanded, id)
	u.Load(ctx)
	return nil
}
