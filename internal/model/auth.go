package model

import "github.com/golang-jwt/jwt/v5"

// AdminClaims is the JWT payload for an admin session.
type AdminClaims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}

// UserClaims is the JWT payload for a check-in participant.
type UserClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// LoginRequest is the admin login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse returns the admin token.
type LoginResponse struct {
	Token   string `json:"token"`
	AdminID string `json:"adminId"`
}

// TokenRequest asks for a user-scoped token (admin only).
type TokenRequest struct {
	UserID string `json:"userId"`
}

// TokenResponse returns the user token.
type TokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
