package repository

import (
	"context"

	"chirp/internal/domain/entity"
)

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// Create persists a new post and fills in the store-assigned ID and
	// creation timestamp.
	Create(ctx context.Context, post *entity.Post) error

	// ListByOwner returns all posts of the owner in insertion order
	// (creation time ascending, ID as tiebreak). The ordering is stable
	// across calls.
	ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Post, error)

	// Delete removes the post only if it exists AND belongs to ownerID,
	// as a single conditional delete. It reports whether a row was
	// removed; a missing post and a foreign post are indistinguishable.
	Delete(ctx context.Context, postID, ownerID int64) (bool, error)
}
