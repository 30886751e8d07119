package usecase

import (
	"context"
	"time"

	"chirp/internal/domain/entity"
)

// PostOutput is the delivery-facing shape of a post.
type PostOutput struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPostOutput maps a domain post to its delivery-facing shape.
func NewPostOutput(post *entity.Post) *PostOutput {
	return &PostOutput{
		ID:        post.ID,
		Text:      post.Text,
		UserID:    post.UserID,
		CreatedAt: post.CreatedAt,
	}
}

// PostUsecase defines post operations against an already-resolved
// identity. Callers never pass raw tokens here; identity resolution
// happens before this layer.
type PostUsecase interface {
	// Create publishes a post owned by the user.
	Create(ctx context.Context, text string, user *entity.User) (*PostOutput, error)

	// List returns the user's own posts in insertion order.
	List(ctx context.Context, user *entity.User) ([]*PostOutput, error)

	// Delete removes the user's post. It reports false uniformly whether
	// the post does not exist or belongs to someone else.
	Delete(ctx context.Context, postID int64, user *entity.User) (bool, error)
}
