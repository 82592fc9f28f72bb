package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contactdesk/contacts-system/internal/api/metrics"
	"github.com/contactdesk/contacts-system/internal/core/ports"
)

// ContactHandler handles HTTP requests for contact operations. Regular users
// only ever see their own contacts; administrators see everything.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// List handles GET /api/contacts.
//
// @Summary      List contacts visible to the caller
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   contactResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	contacts, err := h.service.ListContacts(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	resp := make([]contactResponse, 0, len(contacts))
	for i := range contacts {
		resp = append(resp, toContactResponse(&contacts[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// ListSummaries handles GET /api/contacts/list, a reduced projection used by
// overview screens that do not need the full record.
//
// @Summary      List contacts in summary form
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   contactListItemResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/contacts/list [get]
func (h *ContactHandler) ListSummaries(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	contacts, err := h.service.ListContacts(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	resp := make([]contactListItemResponse, 0, len(contacts))
	for i := range contacts {
		resp = append(resp, toContactListItem(&contacts[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/contacts/:id.
//
// @Summary      Get a contact by id
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Contact id"
// @Success      200  {object}  contactResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/contacts/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	contact, err := h.service.GetContact(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContactResponse(contact))
}

// Create handles POST /api/contacts.
//
// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      contactRequest  true  "Contact details"
// @Success      201   {object}  contactResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("contact").Inc()
		return err
	}

	contact, err := h.service.CreateContact(c.Request().Context(), caller, toContactInput(&req))
	if err != nil {
		return err
	}

	metrics.ContactMutationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, toContactResponse(contact))
}

// Update handles PUT /api/contacts/:id. The submitted body replaces the
// stored record in full.
//
// @Summary      Update a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Contact id"
// @Param        body  body      contactRequest  true  "Contact details"
// @Success      200   {object}  contactResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  errorResponse
// @Router       /api/contacts/{id} [put]
func (h *ContactHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("contact").Inc()
		return err
	}

	contact, err := h.service.UpdateContact(c.Request().Context(), caller, c.Param("id"), toContactInput(&req))
	if err != nil {
		return err
	}

	metrics.ContactMutationsTotal.WithLabelValues("updated").Inc()
	return c.JSON(http.StatusOK, toContactResponse(contact))
}

// Delete handles DELETE /api/contacts/:id.
//
// @Summary      Delete a contact
// @Tags         contacts
// @Produce      plain
// @Security     BearerAuth
// @Param        id  path  string  true  "Contact id"
// @Success      200  {string}  string
// @Failure      404  {object}  errorResponse
// @Router       /api/contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteContact(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}

	metrics.ContactMutationsTotal.WithLabelValues("deleted").Inc()
	return c.String(http.StatusOK, "contact deleted")
}
