package models

import (
	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

// Claims are issued by the auth provider; this service only verifies them.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// Shopper identifies the caller of a cart operation.
type Shopper struct {
	Claims *Claims
	// Token is the raw bearer token, forwarded when carts sync to a remote receiver.
	Token string
}

func (s Shopper) UserID() string {
	if s.Claims == nil {
		return ""
	}

	return s.Claims.UserID
}
