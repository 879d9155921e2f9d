// Package auth provides authentication functionality.
// This file defines the structures used for transferring data in API
// requests and responses related to authentication.
package auth

import "github.com/Varshinigowda8/Resume-Screening-Agent/session"

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Username        string `json:"username" example:"newuser"`
	Email           string `json:"email" example:"user@example.com"`
	Password        string `json:"password" example:"strongpassword123"`
	ConfirmPassword string `json:"confirm_password" example:"strongpassword123"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Username string `json:"username" example:"newuser"`
	Password string `json:"password" example:"strongpassword123"`
}

// TokenResponse is returned on successful login: a bearer token plus the
// state of the freshly created session (logged in, on the Home page).
type TokenResponse struct {
	AccessToken string                `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string                `json:"token_type" example:"Bearer"`
	ExpiresIn   int64                 `json:"expires_in" example:"1735689600"` // Unix expiry of the token
	Session     session.StateResponse `json:"session"`
}

// MessageResponse carries a human-readable status message, e.g. after
// registration or logout.
type MessageResponse struct {
	Message string `json:"message" example:"Registration successful! Please log in."`
}
