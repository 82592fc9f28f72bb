package controller

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/contactdesk/contacts-system/internal/client/rest"
)

type stubContactAPI struct {
	contacts []rest.Contact
	listErr  error

	listCalls   int
	getCalls    int
	deleteCalls int
}

func (s *stubContactAPI) ListContactSummaries(context.Context) ([]rest.ContactSummary, error) {
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]rest.ContactSummary, 0, len(s.contacts))
	for _, c := range s.contacts {
		out = append(out, rest.ContactSummary{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, Email: c.Email})
	}
	return out, nil
}

func (s *stubContactAPI) GetContact(_ context.Context, id string) (*rest.Contact, error) {
	s.getCalls++
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			clone := s.contacts[i]
			return &clone, nil
		}
	}
	return nil, errors.New("not found")
}

func (s *stubContactAPI) CreateContact(_ context.Context, input rest.ContactInput) (*rest.Contact, error) {
	contact := rest.Contact{ID: fmt.Sprintf("contact_%d", len(s.contacts)+1), FirstName: input.FirstName, LastName: input.LastName, Email: input.Email, TajNumber: input.TajNumber, TaxID: input.TaxID}
	s.contacts = append(s.contacts, contact)
	return &contact, nil
}

func (s *stubContactAPI) UpdateContact(_ context.Context, id string, input rest.ContactInput) (*rest.Contact, error) {
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts[i].FirstName = input.FirstName
			s.contacts[i].LastName = input.LastName
			s.contacts[i].Email = input.Email
			return &s.contacts[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (s *stubContactAPI) DeleteContact(_ context.Context, id string) error {
	s.deleteCalls++
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func seedContacts(n int) []rest.Contact {
	contacts := make([]rest.Contact, 0, n)
	for i := 0; i < n; i++ {
		contacts = append(contacts, rest.Contact{
			ID:        fmt.Sprintf("contact_%d", i+1),
			FirstName: fmt.Sprintf("First%d", i+1),
			LastName:  "Last",
			Email:     fmt.Sprintf("c%d@example.com", i+1),
			TajNumber: "123456789",
			TaxID:     "1234567890",
		})
	}
	return contacts
}

func TestContactList_LoadFailureLeavesListEmpty(t *testing.T) {
	api := &stubContactAPI{listErr: errors.New("connection refused")}
	list := NewContactList(api, nil, zerolog.Nop())

	list.Load(context.Background())

	if len(list.Contacts) != 0 {
		t.Fatalf("expected empty list on failure, got %d", len(list.Contacts))
	}
}

func TestContactList_EditFetchesFullDetail(t *testing.T) {
	api := &stubContactAPI{contacts: seedContacts(2)}
	list := NewContactList(api, nil, zerolog.Nop())
	list.Load(context.Background())

	if err := list.StartEdit(context.Background(), "contact_2"); err != nil {
		t.Fatalf("StartEdit returned error: %v", err)
	}
	if api.getCalls != 1 {
		t.Fatalf("expected one detail fetch, got %d", api.getCalls)
	}
	if list.Draft() == nil || list.Draft().FirstName != "First2" {
		t.Fatalf("draft not populated from detail")
	}

	// Cancel discards the draft; nothing was sent.
	list.CancelEdit()
	if list.Draft() != nil {
		t.Fatalf("expected draft discarded")
	}
}

func TestContactList_SubmitEditUpdatesAndRefreshes(t *testing.T) {
	api := &stubContactAPI{contacts: seedContacts(2)}
	list := NewContactList(api, nil, zerolog.Nop())
	list.Load(context.Background())

	if err := list.StartEdit(context.Background(), "contact_1"); err != nil {
		t.Fatalf("StartEdit returned error: %v", err)
	}
	list.Draft().FirstName = "Renamed"
	listCallsBefore := api.listCalls

	if err := list.SubmitDraft(context.Background()); err != nil {
		t.Fatalf("SubmitDraft returned error: %v", err)
	}

	if api.contacts[0].FirstName != "Renamed" {
		t.Fatalf("update not applied: %+v", api.contacts[0])
	}
	if api.listCalls != listCallsBefore+1 {
		t.Fatalf("expected one refresh after update")
	}
	if list.Draft() != nil {
		t.Fatalf("expected draft closed after success")
	}
}

func TestContactList_CreateFlow(t *testing.T) {
	api := &stubContactAPI{}
	list := NewContactList(api, nil, zerolog.Nop())
	list.Load(context.Background())

	list.StartCreate()
	draft := list.Draft()
	draft.FirstName = "Anna"
	draft.LastName = "Kiss"
	draft.Email = "anna@example.com"
	draft.TajNumber = "123456789"
	draft.TaxID = "1234567890"

	if err := list.SubmitDraft(context.Background()); err != nil {
		t.Fatalf("SubmitDraft returned error: %v", err)
	}
	if len(api.contacts) != 1 || api.contacts[0].FirstName != "Anna" {
		t.Fatalf("create not applied: %+v", api.contacts)
	}
	if len(list.Contacts) != 1 {
		t.Fatalf("expected refreshed list, got %d", len(list.Contacts))
	}
}

func TestContactList_DeleteConfirmationGate(t *testing.T) {
	api := &stubContactAPI{contacts: seedContacts(2)}
	confirmed := false
	list := NewContactList(api, func(string) bool { return confirmed }, zerolog.Nop())
	list.Load(context.Background())
	listCallsBefore := api.listCalls

	// Declined: no DELETE, no refresh.
	if err := list.DeleteClicked(context.Background(), "contact_1", &Event{}); err != nil {
		t.Fatalf("DeleteClicked returned error: %v", err)
	}
	if api.deleteCalls != 0 || api.listCalls != listCallsBefore {
		t.Fatalf("declined delete must be a no-op")
	}

	// Confirmed: exactly one DELETE, one refresh.
	confirmed = true
	if err := list.DeleteClicked(context.Background(), "contact_1", &Event{}); err != nil {
		t.Fatalf("DeleteClicked returned error: %v", err)
	}
	if api.deleteCalls != 1 {
		t.Fatalf("expected one DELETE, got %d", api.deleteCalls)
	}
	if api.listCalls != listCallsBefore+1 {
		t.Fatalf("expected one refresh, got %d", api.listCalls-listCallsBefore)
	}
	if len(list.Contacts) != 1 {
		t.Fatalf("expected refreshed list of 1, got %d", len(list.Contacts))
	}
}

func TestContactList_ExpansionPropagation(t *testing.T) {
	api := &stubContactAPI{contacts: seedContacts(1)}
	list := NewContactList(api, func(string) bool { return true }, zerolog.Nop())
	list.Load(context.Background())

	list.RowClicked("contact_1", &Event{})
	if !list.Expanded("contact_1") {
		t.Fatalf("expected row expanded")
	}

	// Inner edit click consumes the event before it reaches the row.
	ev := &Event{}
	if err := list.EditClicked(context.Background(), "contact_1", ev); err != nil {
		t.Fatalf("EditClicked returned error: %v", err)
	}
	list.RowClicked("contact_1", ev)
	if !list.Expanded("contact_1") {
		t.Fatalf("consumed event must not toggle the row")
	}
}
