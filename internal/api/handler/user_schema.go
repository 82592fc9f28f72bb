package handler

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=ROLE_ADMIN ROLE_USER"`
}

// updateUserRequest carries a partial account update. AdminPassword is the
// acting admin's own password; the service requires it whenever username or
// password changes.
type updateUserRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	AdminPassword string `json:"adminPassword"`
	Role          string `json:"role" validate:"omitempty,oneof=ROLE_ADMIN ROLE_USER"`
}

type userResponse struct {
	ID       string            `json:"id"`
	Username string            `json:"username"`
	Role     string            `json:"role"`
	Contacts []contactResponse `json:"contacts"`
}
