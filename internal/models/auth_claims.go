package models

import "github.com/golang-jwt/jwt/v5"

// JwtCustomClaims are the claims the checkout platform puts in its access
// tokens. This service only validates them; it never issues tokens.
type JwtCustomClaims struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
