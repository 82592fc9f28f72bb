package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type addressRequest struct {
	Street  string `json:"street"  validate:"required"`
	City    string `json:"city"    validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
}

// contactRequest is the payload for both create and update. The email field
// is optional on its own; the struct-level email-or-phone rule decides
// whether the contact is reachable at all. Phone entries may be blank (the
// client's dynamic rows start empty), but a non-blank entry must pass the
// phone rule.
type contactRequest struct {
	FirstName    string           `json:"firstName"  validate:"required"`
	LastName     string           `json:"lastName"   validate:"required"`
	Email        string           `json:"email"      validate:"omitempty,email"`
	MotherName   string           `json:"motherName"`
	BirthDate    string           `json:"birthDate"`
	TajNumber    string           `json:"tajNumber"  validate:"required,numeric,len=9"`
	TaxID        string           `json:"taxId"      validate:"required,numeric,len=10"`
	PhoneNumbers []string         `json:"phoneNumbers" validate:"omitempty,dive,omitempty,phone"`
	Addresses    []addressRequest `json:"addresses"    validate:"omitempty,dive"`
}

type addressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

type phoneNumberResponse struct {
	PhoneNumber string `json:"phoneNumber"`
}

// contactResponse is the full contact view returned by get/create/update.
type contactResponse struct {
	ID           string                `json:"id"`
	UserID       string                `json:"userId,omitempty"`
	FirstName    string                `json:"firstName"`
	LastName     string                `json:"lastName"`
	Email        string                `json:"email"`
	MotherName   string                `json:"motherName"`
	BirthDate    string                `json:"birthDate"`
	TajNumber    string                `json:"tajNumber"`
	TaxID        string                `json:"taxId"`
	PhoneNumbers []phoneNumberResponse `json:"phoneNumbers"`
	Addresses    []addressResponse     `json:"addresses"`
}

// contactListItemResponse is the projection served by GET /api/contacts/list.
// It carries what the list view renders; the edit flow re-fetches the full
// document by id.
type contactListItemResponse struct {
	ID           string                `json:"id"`
	FirstName    string                `json:"firstName"`
	LastName     string                `json:"lastName"`
	Email        string                `json:"email"`
	PhoneNumbers []phoneNumberResponse `json:"phoneNumbers"`
	Addresses    []addressResponse     `json:"addresses"`
}
