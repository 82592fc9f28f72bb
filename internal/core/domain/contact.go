package domain

import (
	"errors"
	"time"
)

var ErrContactNotFound = errors.New("contact not found")

// Address is a postal address attached to a contact.
type Address struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	ZipCode string `json:"zipCode" bson:"zip_code"`
}

// PhoneNumber wraps a single phone entry. The object shape (rather than a bare
// string) matches the wire format consumed by the admin client.
type PhoneNumber struct {
	PhoneNumber string `json:"phoneNumber" bson:"phone_number"`
}

// Contact is the core aggregate: one person in a user's address book.
type Contact struct {
	ID           string        `json:"id" bson:"_id,omitempty"`
	UserID       string        `json:"userId,omitempty" bson:"user_id"`
	FirstName    string        `json:"firstName" bson:"first_name"`
	LastName     string        `json:"lastName" bson:"last_name"`
	Email        string        `json:"email" bson:"email"`
	MotherName   string        `json:"motherName" bson:"mother_name"`
	BirthDate    string        `json:"birthDate" bson:"birth_date"`
	TajNumber    string        `json:"tajNumber" bson:"taj_number"`
	TaxID        string        `json:"taxId" bson:"tax_id"`
	PhoneNumbers []PhoneNumber `json:"phoneNumbers" bson:"phone_numbers"`
	Addresses    []Address     `json:"addresses" bson:"addresses"`
	CreatedAt    time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" bson:"updated_at"`
}
