package handlers

import "storefront-gateway/internal/models"

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// LoginResponse is the login result without the bearer token, which only
// ever leaves the gateway sealed inside the session cookie.
type LoginResponse struct {
	UserID   int64       `json:"userId"`
	Name     string      `json:"name"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	Redirect string      `json:"redirect,omitempty"`
}

type SessionResponse struct {
	Role  *string `json:"role"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type LogoutResponse struct {
	OK bool `json:"ok"`
}
