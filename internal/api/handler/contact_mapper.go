package handler

import (
	"github.com/contactdesk/contacts-system/internal/core/domain"
	"github.com/contactdesk/contacts-system/internal/core/ports"
)

func toContactInput(req *contactRequest) ports.ContactInput {
	addresses := make([]ports.AddressInput, 0, len(req.Addresses))
	for _, a := range req.Addresses {
		addresses = append(addresses, ports.AddressInput{
			Street:  a.Street,
			City:    a.City,
			ZipCode: a.ZipCode,
		})
	}
	return ports.ContactInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		MotherName:   req.MotherName,
		BirthDate:    req.BirthDate,
		TajNumber:    req.TajNumber,
		TaxID:        req.TaxID,
		PhoneNumbers: req.PhoneNumbers,
		Addresses:    addresses,
	}
}

func toContactResponse(c *domain.Contact) contactResponse {
	return contactResponse{
		ID:           c.ID,
		UserID:       c.UserID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		MotherName:   c.MotherName,
		BirthDate:    c.BirthDate,
		TajNumber:    c.TajNumber,
		TaxID:        c.TaxID,
		PhoneNumbers: toPhoneResponses(c.PhoneNumbers),
		Addresses:    toAddressResponses(c.Addresses),
	}
}

func toContactListItem(c *domain.Contact) contactListItemResponse {
	return contactListItemResponse{
		ID:           c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		PhoneNumbers: toPhoneResponses(c.PhoneNumbers),
		Addresses:    toAddressResponses(c.Addresses),
	}
}

func toUserResponse(u *domain.User) userResponse {
	contacts := make([]contactResponse, 0, len(u.Contacts))
	for i := range u.Contacts {
		contacts = append(contacts, toContactResponse(&u.Contacts[i]))
	}
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Contacts: contacts,
	}
}

func toPhoneResponses(numbers []domain.PhoneNumber) []phoneNumberResponse {
	out := make([]phoneNumberResponse, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, phoneNumberResponse{PhoneNumber: n.PhoneNumber})
	}
	return out
}

func toAddressResponses(addresses []domain.Address) []addressResponse {
	out := make([]addressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, addressResponse{Street: a.Street, City: a.City, ZipCode: a.ZipCode})
	}
	return out
}
