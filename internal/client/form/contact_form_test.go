package form

import (
	"context"
	"errors"
	"testing"

	"github.com/contactdesk/contacts-system/internal/client/rest"
	"github.com/contactdesk/contacts-system/internal/client/validation"
)

func filledContactForm() *ContactForm {
	f := NewContactForm()
	f.FirstName = "Anna"
	f.LastName = "Kiss"
	f.Email = "anna@example.com"
	f.TajNumber = "123456789"
	f.TaxID = "1234567890"
	return f
}

func TestContactForm_ValidDraft(t *testing.T) {
	f := filledContactForm()

	if !f.Validate() {
		t.Fatalf("expected valid, got errors %v", f.Errors())
	}
	if f.State() != Valid {
		t.Fatalf("expected Valid state, got %v", f.State())
	}
}

func TestContactForm_EmailOrPhoneRule(t *testing.T) {
	f := filledContactForm()
	f.Email = ""
	f.PhoneNumbers = []string{""}

	if f.Validate() {
		t.Fatalf("expected invalid")
	}
	if _, ok := f.Errors()[validation.KeyEmailOrPhone]; !ok {
		t.Fatalf("expected emailOrPhone error, got %v", f.Errors())
	}

	// One reachable phone number flips the form valid again.
	f.PhoneNumbers = []string{"", "0612345678"}
	if !f.Validate() {
		t.Fatalf("expected valid with a phone, got %v", f.Errors())
	}
}

func TestContactForm_PhoneEntriesValidatedByIndex(t *testing.T) {
	f := filledContactForm()
	f.PhoneNumbers = []string{"0612345678", "123"}

	if f.Validate() {
		t.Fatalf("expected invalid")
	}
	if _, ok := f.Errors()["phoneNumbers[1]"]; !ok {
		t.Fatalf("expected phoneNumbers[1] error, got %v", f.Errors())
	}
	if _, ok := f.Errors()["phoneNumbers[0]"]; ok {
		t.Fatalf("valid entry must not carry an error: %v", f.Errors())
	}
}

func TestContactForm_AddressFieldsRequired(t *testing.T) {
	f := filledContactForm()
	f.AddAddress()
	f.Addresses[0] = AddressEntry{Street: "Main 1", City: "", ZipCode: "1011"}

	if f.Validate() {
		t.Fatalf("expected invalid")
	}
	if _, ok := f.Errors()["addresses[0].city"]; !ok {
		t.Fatalf("expected addresses[0].city error, got %v", f.Errors())
	}
}

func TestContactForm_ErrorsClearedPerAttempt(t *testing.T) {
	f := filledContactForm()
	f.FirstName = ""
	if f.Validate() {
		t.Fatalf("expected invalid")
	}

	f.FirstName = "Anna"
	if !f.Validate() {
		t.Fatalf("expected valid, got %v", f.Errors())
	}
	if len(f.Errors()) != 0 {
		t.Fatalf("stale errors survived revalidation: %v", f.Errors())
	}
}

func TestContactForm_SubmitLocalFailureInhibitsCall(t *testing.T) {
	f := NewContactForm() // empty, invalid
	calls := 0

	err := f.Submit(context.Background(), func(context.Context, rest.ContactInput) error {
		calls++
		return nil
	})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("local failure must not reach the backend, got %d calls", calls)
	}
	if f.State() != FailedLocal {
		t.Fatalf("expected FailedLocal, got %v", f.State())
	}
}

func TestContactForm_SubmitSuccessResets(t *testing.T) {
	f := filledContactForm()
	f.Touch("firstName")

	err := f.Submit(context.Background(), func(_ context.Context, input rest.ContactInput) error {
		if input.FirstName != "Anna" || input.TajNumber != "123456789" {
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
	if len(f.Errors()) != 0 || f.Touched("firstName") {
		t.Fatalf("expected reset form")
	}
}

func TestContactForm_RemoteErrorsMergeAndTouch(t *testing.T) {
	f := filledContactForm()
	remote := &rest.APIError{StatusCode: 400, Fields: map[string]string{"email": "invalid format"}}

	err := f.Submit(context.Background(), func(context.Context, rest.ContactInput) error {
		return remote
	})
	if !errors.Is(err, error(remote)) {
		t.Fatalf("expected remote error returned, got %v", err)
	}
	if f.State() != FailedRemote {
		t.Fatalf("expected FailedRemote, got %v", f.State())
	}
	if len(f.Errors()) != 1 || f.Errors()["email"] != "invalid format" {
		t.Fatalf("expected exactly the server's entry, got %v", f.Errors())
	}
	if !f.Touched("email") {
		t.Fatalf("server-named field must be touched")
	}
	if f.Touched("firstName") {
		t.Fatalf("unrelated fields must stay untouched")
	}
}

func TestContactForm_UnknownServerFieldBecomesGenericBanner(t *testing.T) {
	f := filledContactForm()
	remote := &rest.APIError{StatusCode: 400, Fields: map[string]string{"shoeSize": "too large"}}

	_ = f.Submit(context.Background(), func(context.Context, rest.ContactInput) error {
		return remote
	})

	if _, ok := f.Errors()[GenericErrorKey]; !ok {
		t.Fatalf("expected generic banner entry, got %v", f.Errors())
	}
	if _, ok := f.Errors()["shoeSize"]; ok {
		t.Fatalf("unknown field must not appear verbatim: %v", f.Errors())
	}
}

func TestContactForm_TransportFailureBecomesGenericBanner(t *testing.T) {
	f := filledContactForm()

	_ = f.Submit(context.Background(), func(context.Context, rest.ContactInput) error {
		return errors.New("connection refused")
	})

	if f.State() != FailedRemote {
		t.Fatalf("expected FailedRemote, got %v", f.State())
	}
	if _, ok := f.Errors()[GenericErrorKey]; !ok {
		t.Fatalf("expected generic banner entry, got %v", f.Errors())
	}
}

func TestContactForm_PhoneRowsAddRemove(t *testing.T) {
	f := NewContactForm()
	if len(f.PhoneNumbers) != 1 {
		t.Fatalf("expected one blank row, got %d", len(f.PhoneNumbers))
	}

	f.AddPhone()
	f.PhoneNumbers[1] = "0612345678"
	f.RemovePhone(0)
	if len(f.PhoneNumbers) != 1 || f.PhoneNumbers[0] != "0612345678" {
		t.Fatalf("unexpected rows: %v", f.PhoneNumbers)
	}

	f.RemovePhone(5) // out of range is a no-op
	if len(f.PhoneNumbers) != 1 {
		t.Fatalf("out-of-range remove must be a no-op")
	}
}

func TestContactForm_FromContactCopiesFields(t *testing.T) {
	contact := &rest.Contact{
		ID:           "contact_1",
		FirstName:    "Anna",
		LastName:     "Kiss",
		Email:        "anna@example.com",
		TajNumber:    "123456789",
		TaxID:        "1234567890",
		PhoneNumbers: []rest.PhoneNumber{{PhoneNumber: "0612345678"}},
		Addresses:    []rest.Address{{Street: "Main 1", City: "Budapest", ZipCode: "1011"}},
	}

	f := NewContactFormFrom(contact)
	if f.State() != Pristine {
		t.Fatalf("draft must start Pristine, got %v", f.State())
	}
	if f.FirstName != "Anna" || len(f.PhoneNumbers) != 1 || f.PhoneNumbers[0] != "0612345678" {
		t.Fatalf("fields not copied: %+v", f)
	}
	if len(f.Addresses) != 1 || f.Addresses[0].City != "Budapest" {
		t.Fatalf("addresses not copied: %+v", f.Addresses)
	}

	// Mutating the draft leaves the source alone.
	f.FirstName = "Eva"
	if contact.FirstName != "Anna" {
		t.Fatalf("draft mutation leaked into source")
	}
}
