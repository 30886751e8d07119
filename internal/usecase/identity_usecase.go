package usecase

import (
	"context"

	"chirp/internal/domain/entity"
)

// IdentityUsecase is the single per-request gate for protected
// operations: it turns an inbound bearer token into a verified user.
type IdentityUsecase interface {
	// Resolve validates the token and loads the user it names. Every
	// failure mode, including a token that outlives its account, yields
	// ErrUnauthenticated. Resolve has no side effects.
	Resolve(ctx context.Context, tokenString string) (*entity.User, error)
}
