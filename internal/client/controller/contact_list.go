package controller

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/contactdesk/contacts-system/internal/client/form"
	"github.com/contactdesk/contacts-system/internal/client/rest"
)

// ContactAPI is the backend collaborator the contact list talks to.
type ContactAPI interface {
	ListContactSummaries(ctx context.Context) ([]rest.ContactSummary, error)
	GetContact(ctx context.Context, id string) (*rest.Contact, error)
	CreateContact(ctx context.Context, input rest.ContactInput) (*rest.Contact, error)
	UpdateContact(ctx context.Context, id string, input rest.ContactInput) (*rest.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

// ConfirmFunc asks the user to approve a destructive action. Returning false
// aborts it before any backend call.
type ConfirmFunc func(prompt string) bool

// ContactList holds the contact overview's state. The displayed slice always
// reflects the last successful fetch; mutations refresh from the backend
// rather than patching locally.
type ContactList struct {
	api     ContactAPI
	confirm ConfirmFunc
	log     zerolog.Logger

	Contacts []rest.ContactSummary
	expanded map[string]struct{}

	draft     *form.ContactForm
	editingID string
}

func NewContactList(api ContactAPI, confirm ConfirmFunc, log zerolog.Logger) *ContactList {
	return &ContactList{
		api:      api,
		confirm:  confirm,
		log:      log,
		expanded: make(map[string]struct{}),
	}
}

// Load fetches the list. On failure the list stays empty and the error is
// logged; there is no retry.
func (c *ContactList) Load(ctx context.Context) {
	contacts, err := c.api.ListContactSummaries(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to load contacts")
		c.Contacts = nil
		return
	}
	c.Contacts = contacts
}

// RowClicked toggles the row's detail view unless an inner control already
// consumed the event.
func (c *ContactList) RowClicked(id string, ev *Event) {
	if ev.PropagationStopped() {
		return
	}
	if _, ok := c.expanded[id]; ok {
		delete(c.expanded, id)
		return
	}
	c.expanded[id] = struct{}{}
}

// Expanded reports whether the row's detail view is open.
func (c *ContactList) Expanded(id string) bool {
	_, ok := c.expanded[id]
	return ok
}

// EditClicked starts the edit flow from a row's inner edit button. The event
// is consumed so the row does not also toggle.
func (c *ContactList) EditClicked(ctx context.Context, id string, ev *Event) error {
	ev.StopPropagation()
	return c.StartEdit(ctx, id)
}

// StartEdit fetches the full record (the list only carries a projection) and
// copies it into a draft form.
func (c *ContactList) StartEdit(ctx context.Context, id string) error {
	contact, err := c.api.GetContact(ctx, id)
	if err != nil {
		c.log.Error().Err(err).Str("contact_id", id).Msg("failed to load contact for editing")
		return err
	}
	c.draft = form.NewContactFormFrom(contact)
	c.editingID = id
	return nil
}

// StartCreate opens a blank draft.
func (c *ContactList) StartCreate() {
	c.draft = form.NewContactForm()
	c.editingID = ""
}

// Draft returns the active draft form, or nil when no edit is in progress.
func (c *ContactList) Draft() *form.ContactForm {
	return c.draft
}

// CancelEdit discards the draft without calling the backend.
func (c *ContactList) CancelEdit() {
	c.draft = nil
	c.editingID = ""
}

// SubmitDraft submits the active draft (create or update, depending on how
// the draft was opened) and refreshes the list on success.
func (c *ContactList) SubmitDraft(ctx context.Context) error {
	if c.draft == nil {
		return nil
	}

	id := c.editingID
	err := c.draft.Submit(ctx, func(ctx context.Context, input rest.ContactInput) error {
		if id == "" {
			_, err := c.api.CreateContact(ctx, input)
			return err
		}
		_, err := c.api.UpdateContact(ctx, id, input)
		return err
	})
	if err != nil {
		return err
	}

	c.draft = nil
	c.editingID = ""
	c.Load(ctx)
	return nil
}

// DeleteClicked asks for confirmation and, only when granted, deletes the
// contact and refreshes the list. The event is consumed so the row does not
// toggle.
func (c *ContactList) DeleteClicked(ctx context.Context, id string, ev *Event) error {
	ev.StopPropagation()

	if c.confirm == nil || !c.confirm("Delete this contact?") {
		return nil
	}

	if err := c.api.DeleteContact(ctx, id); err != nil {
		c.log.Error().Err(err).Str("contact_id", id).Msg("failed to delete contact")
		return err
	}

	delete(c.expanded, id)
	c.Load(ctx)
	return nil
}
