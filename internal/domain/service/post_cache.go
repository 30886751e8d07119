package service

import (
	"context"

	"chirp/internal/domain/entity"
)

// PostCache is a time-bounded cache for a user's post listing. It is an
// optimization only: a miss or a cache failure must always fall back to
// the store, and any mutation by an owner invalidates that owner's entry.
type PostCache interface {
	// Get returns the cached listing for the owner, or (nil, nil) on a miss.
	Get(ctx context.Context, ownerID int64) ([]*entity.Post, error)

	// Set stores the listing for the owner with the configured TTL.
	Set(ctx context.Context, ownerID int64, posts []*entity.Post) error

	// Invalidate drops the owner's cached listing, if any.
	Invalidate(ctx context.Context, ownerID int64) error
}
