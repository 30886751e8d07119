package impl

import (
	"context"
	"log/slog"

	deliverycontext "chirp/internal/delivery/context"
	"chirp/internal/domain/entity"
	"chirp/internal/domain/repository"
	"chirp/internal/domain/service"
	"chirp/internal/usecase"

	"github.com/pkg/errors"
)

// postService implements the PostUsecase interface.
type postService struct {
	postRepo repository.PostRepository
	cache    service.PostCache
	logger   *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(
	postRepo repository.PostRepository,
	cache service.PostCache,
	logger *slog.Logger,
) usecase.PostUsecase {
	return &postService{
		postRepo: postRepo,
		cache:    cache,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create publishes a post owned by the user and invalidates the owner's
// cached listing. Text validation is a transport-boundary concern and
// does not happen here.
func (srv *postService) Create(ctx context.Context, text string, user *entity.User) (*usecase.PostOutput, error) {
	post := &entity.Post{
		Text:   text,
		UserID: user.ID,
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		srv.log(ctx).Error("Failed to create post", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.invalidateCache(ctx, user.ID)
	srv.log(ctx).Debug("Post created", slog.Int64("postID", post.ID), slog.Int64("userID", user.ID))

	return usecase.NewPostOutput(post), nil
}

// List returns the user's own posts in insertion order, reading through
// the cache. Cache failures are logged and fall back to the store.
func (srv *postService) List(ctx context.Context, user *entity.User) ([]*usecase.PostOutput, error) {
	posts, err := srv.cache.Get(ctx, user.ID)
	if err != nil {
		srv.log(ctx).Warn("Post cache read failed", slog.Int64("userID", user.ID), slog.Any("error", err))
		posts = nil
	}

	if posts == nil {
		posts, err = srv.postRepo.ListByOwner(ctx, user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list posts by owner")
		}

		if err := srv.cache.Set(ctx, user.ID, posts); err != nil {
			srv.log(ctx).Warn("Post cache write failed", slog.Int64("userID", user.ID), slog.Any("error", err))
		}
	}

	outputs := make([]*usecase.PostOutput, 0, len(posts))
	for _, post := range posts {
		outputs = append(outputs, usecase.NewPostOutput(post))
	}

	return outputs, nil
}

// Delete removes the user's post. The owner check happens atomically
// inside the store's conditional delete; a missing post and a foreign
// post uniformly report false, with no hint which one it was.
func (srv *postService) Delete(ctx context.Context, postID int64, user *entity.User) (bool, error) {
	deleted, err := srv.postRepo.Delete(ctx, postID, user.ID)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete post")
	}

	if deleted {
		srv.invalidateCache(ctx, user.ID)
		srv.log(ctx).Debug("Post deleted", slog.Int64("postID", postID), slog.Int64("userID", user.ID))
	}

	return deleted, nil
}

// invalidateCache drops the owner's cached listing after a mutation.
// The cache is an optimization, so failures are logged, never fatal.
func (srv *postService) invalidateCache(ctx context.Context, ownerID int64) {
	if err := srv.cache.Invalidate(ctx, ownerID); err != nil {
		srv.log(ctx).Warn("Post cache invalidation failed", slog.Int64("userID", ownerID), slog.Any("error", err))
	}
}
