package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single rejection surface of token validation.
// Malformed structure, bad signature, expiry and a missing subject all
// collapse into it so callers cannot probe why a token was refused.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the verified claim set carried by an access token.
type Claims struct {
	UserID int64
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed access token for the given user, expiring
	// after the configured time-to-live.
	Issue(userID int64) (string, error)

	// Validate checks a token string and returns its claims, or
	// ErrInvalidToken if the token must be rejected for any reason.
	Validate(tokenString string) (*Claims, error)
}
