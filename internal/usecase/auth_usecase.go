// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the issued bearer credential after a successful
// registration or login.
type AuthOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthUsecase defines the interface for registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new user and issues an access token for it.
	// A taken email fails with ErrEmailAlreadyRegistered, whether it was
	// caught by the pre-check or by losing the insert race.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies the credentials and issues an access token.
	// An unknown email and a wrong password both fail with
	// ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
