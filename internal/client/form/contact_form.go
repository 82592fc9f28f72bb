package form

import (
	"context"
	"fmt"
	"strings"

	"github.com/contactdesk/contacts-system/internal/client/rest"
	"github.com/contactdesk/contacts-system/internal/client/validation"
)

// AddressEntry is one dynamically-added address group; all three fields are
// required once the entry exists.
type AddressEntry struct {
	Street  string
	City    string
	ZipCode string
}

// ContactForm drives both the create and the edit flow for a contact.
type ContactForm struct {
	core

	FirstName  string
	LastName   string
	Email      string
	MotherName string
	BirthDate  string
	TajNumber  string
	TaxID      string

	PhoneNumbers []string
	Addresses    []AddressEntry
}

// NewContactForm returns an empty Pristine form with one blank phone row, the
// way the create view opens.
func NewContactForm() *ContactForm {
	return &ContactForm{
		core:         newCore(),
		PhoneNumbers: []string{""},
	}
}

// NewContactFormFrom copies a fetched contact into a fresh draft for editing.
// The draft is independent: cancelling it never touches the source record.
func NewContactFormFrom(contact *rest.Contact) *ContactForm {
	f := &ContactForm{
		core:       newCore(),
		FirstName:  contact.FirstName,
		LastName:   contact.LastName,
		Email:      contact.Email,
		MotherName: contact.MotherName,
		BirthDate:  contact.BirthDate,
		TajNumber:  contact.TajNumber,
		TaxID:      contact.TaxID,
	}
	for _, p := range contact.PhoneNumbers {
		f.PhoneNumbers = append(f.PhoneNumbers, p.PhoneNumber)
	}
	if len(f.PhoneNumbers) == 0 {
		f.PhoneNumbers = []string{""}
	}
	for _, a := range contact.Addresses {
		f.Addresses = append(f.Addresses, AddressEntry{Street: a.Street, City: a.City, ZipCode: a.ZipCode})
	}
	return f
}

// AddPhone appends a blank phone row.
func (f *ContactForm) AddPhone() {
	f.PhoneNumbers = append(f.PhoneNumbers, "")
	f.Touch("phoneNumbers")
}

// RemovePhone deletes the phone row at index i; out-of-range is a no-op.
func (f *ContactForm) RemovePhone(i int) {
	if i < 0 || i >= len(f.PhoneNumbers) {
		return
	}
	f.PhoneNumbers = append(f.PhoneNumbers[:i], f.PhoneNumbers[i+1:]...)
	f.Touch("phoneNumbers")
}

// AddAddress appends a blank address group.
func (f *ContactForm) AddAddress() {
	f.Addresses = append(f.Addresses, AddressEntry{})
	f.Touch("addresses")
}

// RemoveAddress deletes the address group at index i; out-of-range is a no-op.
func (f *ContactForm) RemoveAddress(i int) {
	if i < 0 || i >= len(f.Addresses) {
		return
	}
	f.Addresses = append(f.Addresses[:i], f.Addresses[i+1:]...)
	f.Touch("addresses")
}

// Validate clears the error map and re-evaluates every rule, moving the form
// to Valid or Invalid.
func (f *ContactForm) Validate() bool {
	f.beginValidation()

	if !validation.Required(f.FirstName) {
		f.errors["firstName"] = "first name is required"
	}
	if !validation.Required(f.LastName) {
		f.errors["lastName"] = "last name is required"
	}
	if !validation.ValidEmail(f.Email) {
		f.errors["email"] = "must be a valid email address"
	}
	if !validation.Required(f.TajNumber) {
		f.errors["tajNumber"] = "taj number is required"
	}
	if !validation.Required(f.TaxID) {
		f.errors["taxId"] = "tax id is required"
	}

	for i, phone := range f.PhoneNumbers {
		if phone == "" {
			continue
		}
		if !validation.ValidPhone(phone) {
			f.errors[fmt.Sprintf("phoneNumbers[%d]", i)] = "must contain only digits and spaces, with 10 or 11 digits"
		}
	}

	for i, addr := range f.Addresses {
		if !validation.Required(addr.Street) {
			f.errors[fmt.Sprintf("addresses[%d].street", i)] = "street is required"
		}
		if !validation.Required(addr.City) {
			f.errors[fmt.Sprintf("addresses[%d].city", i)] = "city is required"
		}
		if !validation.Required(addr.ZipCode) {
			f.errors[fmt.Sprintf("addresses[%d].zipCode", i)] = "zip code is required"
		}
	}

	if !validation.EmailOrPhone(f.Email, f.PhoneNumbers) {
		f.errors[validation.KeyEmailOrPhone] = "either an email address or a phone number is required"
	}

	return f.finishValidation()
}

// Input collects the current values into the request payload.
func (f *ContactForm) Input() rest.ContactInput {
	phones := make([]string, 0, len(f.PhoneNumbers))
	for _, p := range f.PhoneNumbers {
		if p != "" {
			phones = append(phones, p)
		}
	}
	addresses := make([]rest.Address, 0, len(f.Addresses))
	for _, a := range f.Addresses {
		addresses = append(addresses, rest.Address{Street: a.Street, City: a.City, ZipCode: a.ZipCode})
	}
	return rest.ContactInput{
		FirstName:    f.FirstName,
		LastName:     f.LastName,
		Email:        f.Email,
		MotherName:   f.MotherName,
		BirthDate:    f.BirthDate,
		TajNumber:    f.TajNumber,
		TaxID:        f.TaxID,
		PhoneNumbers: phones,
		Addresses:    addresses,
	}
}

// Submit validates locally, then hands the payload to save. Local failure
// inhibits the call and returns ErrInvalid. A remote failure merges into the
// error map; a success resets the form to Pristine.
func (f *ContactForm) Submit(ctx context.Context, save func(context.Context, rest.ContactInput) error) error {
	if !f.Validate() {
		f.state = FailedLocal
		return ErrInvalid
	}

	f.state = Submitting
	if err := save(ctx, f.Input()); err != nil {
		f.failRemote(err, f.isKnownField)
		return err
	}

	f.reset()
	return nil
}

func (f *ContactForm) isKnownField(name string) bool {
	switch name {
	case "firstName", "lastName", "email", "motherName", "birthDate",
		"tajNumber", "taxId", validation.KeyEmailOrPhone:
		return true
	}
	return strings.HasPrefix(name, "phoneNumbers") || strings.HasPrefix(name, "addresses")
}
