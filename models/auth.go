package models

// Claims is the verified actor identity extracted from a bearer token.
// Absence of claims is a permission denial for write paths and a
// non-error for read paths.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}
