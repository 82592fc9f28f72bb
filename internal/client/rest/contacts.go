package rest

import (
	"context"
	"net/http"
)

// Address is one postal address entry of a contact.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// PhoneNumber is one phone entry as the backend returns it.
type PhoneNumber struct {
	PhoneNumber string `json:"phoneNumber"`
}

// Contact is the full record served by GET /api/contacts/{id}.
type Contact struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	FirstName    string        `json:"firstName"`
	LastName     string        `json:"lastName"`
	Email        string        `json:"email"`
	MotherName   string        `json:"motherName"`
	BirthDate    string        `json:"birthDate"`
	TajNumber    string        `json:"tajNumber"`
	TaxID        string        `json:"taxId"`
	PhoneNumbers []PhoneNumber `json:"phoneNumbers"`
	Addresses    []Address     `json:"addresses"`
}

// ContactSummary is the reduced projection served by GET /api/contacts/list.
type ContactSummary struct {
	ID           string        `json:"id"`
	FirstName    string        `json:"firstName"`
	LastName     string        `json:"lastName"`
	Email        string        `json:"email"`
	PhoneNumbers []PhoneNumber `json:"phoneNumbers"`
	Addresses    []Address     `json:"addresses"`
}

// ContactInput is the create/update payload. Phone numbers travel as plain
// strings; the backend wraps them on the way back.
type ContactInput struct {
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	MotherName   string    `json:"motherName"`
	BirthDate    string    `json:"birthDate"`
	TajNumber    string    `json:"tajNumber"`
	TaxID        string    `json:"taxId"`
	PhoneNumbers []string  `json:"phoneNumbers"`
	Addresses    []Address `json:"addresses"`
}

func (c *Client) ListContacts(ctx context.Context) ([]Contact, error) {
	var contacts []Contact
	if err := c.do(ctx, http.MethodGet, "/api/contacts", nil, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (c *Client) ListContactSummaries(ctx context.Context) ([]ContactSummary, error) {
	var contacts []ContactSummary
	if err := c.do(ctx, http.MethodGet, "/api/contacts/list", nil, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (c *Client) GetContact(ctx context.Context, id string) (*Contact, error) {
	var contact Contact
	if err := c.do(ctx, http.MethodGet, "/api/contacts/"+id, nil, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (c *Client) CreateContact(ctx context.Context, input ContactInput) (*Contact, error) {
	var contact Contact
	if err := c.do(ctx, http.MethodPost, "/api/contacts", input, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (c *Client) UpdateContact(ctx context.Context, id string, input ContactInput) (*Contact, error) {
	var contact Contact
	if err := c.do(ctx, http.MethodPut, "/api/contacts/"+id, input, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// DeleteContact removes a contact. The backend answers with a plain-text
// body, which is discarded.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/contacts/"+id, nil, nil)
}
