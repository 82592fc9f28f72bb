package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contactdesk/contacts-system/internal/api/metrics"
	"github.com/contactdesk/contacts-system/internal/core/ports"
)

// UserHandler handles HTTP requests for user administration. All routes are
// mounted behind the Auth and RequireRole(ROLE_ADMIN) middlewares.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/auth/users.
//
// @Summary      List all users with their contacts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/auth/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]userResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/auth/users.
//
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  errorResponse
// @Router       /api/auth/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("user").Inc()
		return err
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	metrics.UserMutationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Update handles PUT /api/auth/users/:id. Changing the username or password
// of any account requires the acting administrator to re-enter their own
// password in the adminPassword field.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/auth/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("user").Inc()
		return err
	}

	user, err := h.service.UpdateUser(c.Request().Context(), c.Param("id"), actor, ports.UpdateUserInput{
		Username:      req.Username,
		Password:      req.Password,
		AdminPassword: req.AdminPassword,
		Role:          req.Role,
	})
	if err != nil {
		return err
	}

	metrics.UserMutationsTotal.WithLabelValues("updated").Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /api/auth/users/:id. The user's contacts are removed
// in the same operation.
//
// @Summary      Delete a user and their contacts
// @Tags         users
// @Produce      plain
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      200  {string}  string
// @Failure      404  {object}  errorResponse
// @Router       /api/auth/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.UserMutationsTotal.WithLabelValues("deleted").Inc()
	return c.String(http.StatusOK, "user deleted")
}
