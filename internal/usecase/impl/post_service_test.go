package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"chirp/internal/domain/entity"
	mockRepo "chirp/internal/mocks/repository"
	mockService "chirp/internal/mocks/service"
	"chirp/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postServiceFixtures struct {
	postRepo *mockRepo.MockPostRepository
	cache    *mockService.MockPostCache
}

func createTestPostService(t *testing.T) (usecase.PostUsecase, *postServiceFixtures) {
	t.Helper()

	fixtures := &postServiceFixtures{
		postRepo: mockRepo.NewMockPostRepository(t),
		cache:    mockService.NewMockPostCache(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewPostService(fixtures.postRepo, fixtures.cache, logger)

	return svc, fixtures
}

func TestPostService_Create(t *testing.T) {
	t.Parallel()

	owner := &entity.User{ID: 7, Email: "alice@example.com"}

	t.Run("creates a post and invalidates the owner's listing cache", func(t *testing.T) {
		svc, fixtures := createTestPostService(t)

		createdAt := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
		fixtures.postRepo.EXPECT().
			Create(context.Background(), &entity.Post{Text: "hello world", UserID: 7}).
			RunAndReturn(func(_ context.Context, post *entity.Post) error {
				post.ID = 101
				post.CreatedAt = createdAt

				return nil
			})
		fixtures.cache.EXPECT().Invalidate(context.Background(), int64(7)).Return(nil)

		output, err := svc.Create(context.Background(), "hello world", owner)
		require.NoError(t, err)
		assert.Equal(t, int64(101), output.ID)
		assert.Equal(t, "hello world", output.Text)
		assert.Equal(t, int64(7), output.UserID)
		assert.Equal(t, createdAt, output.CreatedAt)
	})

	t.Run("ignores cache invalidation failures", func(t *testing.T) {
		svc, fixtures := createTestPostService(t)

		fixtures.postRepo.EXPECT().
			Create(context.Background(), &entity.Post{Text: "hello world", UserID: 7}).
			Return(nil)
		fixtures.cache.EXPECT().
			Invalidate(context.Background(), int64(7)).
			Return(errors.New("redis down"))

		_, err := svc.Create(context.Background(), "hello world", owner)
		require.NoError(t, err)
	})

	t.Run("propagates store failures and leaves the cache alone", func(t *testing.T) {
		svc, fixtures := createTestPostService(t)

		fixtures.postRepo.EXPECT().
			Create(context.Background(), &entity.Post{Text: "hello world", UserID: 7}).
			Return(errors.New("connection reset"))

		output, err := svc.Create(context.Background(), "hello world", owner)
		require.Error(t, err)
		assert.Nil(t, output)
	})
}

func TestPostService_List(t *testing.T) {
	t.Parallel()

	owner := &entity.User{ID: 7, Email: "alice@example.com"}
	stored := []*entity.Post{
		{ID: 1, Text: "first", UserID: 7},
		{ID: 2, Text: "second", UserID: 7},
	}

	t.Run("serves a cached listing without touching the store", func(t *testing.T) {
		svc, fixtures := createTestPostService(t)

		fixtures.cache.EXPECT().Get(context.Background(), int64(7)).Return(stored, nil)

		outputs, err := svc.List(context.Background(), owner)
		require.NoError(t, err)
		require.Len(t, outputs, 2)
		assert.Equal(t, int64(1), outputs[0].ID)
		assert.Equal(t, "second", outputs[1].Text)
	})

	t.Run("falls through to the store on a cache miss and repopulates", func(t *testing.T) {
		svc, fixtures := createTestPostService(t)

		fixtures.cache.EXPECT().Get(context.Background(), int64(7)).Return(nil, nil)
		fixtures.postRepo.EXPECT().ListByOwner(context.Background(), int64(7)).Return(stored, nil)
		fixtures.cache.EXPECT().Set(context.Background(), int64(7), stored).Return(nil)

		outputs, err := svc.List(context.Background(), owner)
		require.NoError(t, err)
		require.Len(t, outputs, 2)
		assert.Equal(t, "first", outputs[0].Text)
	})

	t.Run("treats a cache read failure as a miss", func(t *testing.T) {
		svc, fixtures := createTestPostService(t)

		fixtures.cache.EXPECT().Get(context.Background(), int64(7)).Return(nil, errors.New("redis down"))
		fixtures.postRepo.EXPECT().ListByOwner(context.Background(), int64(7)).Return(stored, nil)
		fixtures.cache.EXPECT().Set(context.Background(), int64(7), stored).Return(errors.New("redis down"))

		outputs, err := svc.List(context.Background(), owner)
		require.NoError(t, err)
		assert.Len(t, outputs, 2)
	})

	t.Run("returns an empty slice for a user with no posts", func(t *testing.T) {
		svc, fixtures := createTestPostService(t)

		fixtures.cache.EXPECT().Get(context.Background(), int64(7)).Return(nil, nil)
		fixtures.postRepo.EXPECT().
			ListByOwner(context.Background(), int64(7)).
			Return([]*entity.Post{}, nil)
		fixtures.cache.EXPECT().Set(context.Background(), int64(7), []*entity.Post{}).Return(nil)

		outputs, err := svc.List(context.Background(), owner)
		require.NoError(t, err)
		assert.NotNil(t, outputs)
		assert.Empty(t, outputs)
	})

	t.Run("propagates store failures", func(t *testing.T) {
		svc, fixtures := createTestPostService(t)

		fixtures.cache.EXPECT().Get(context.Background(), int64(7)).Return(nil, nil)
		fixtures.postRepo.EXPECT().
			ListByOwner(context.Background(), int64(7)).
			Return(nil, errors.New("connection reset"))

		outputs, err := svc.List(context.Background(), owner)
		require.Error(t, err)
		assert.Nil(t, outputs)
	})
}

func TestPostService_Delete(t *testing.T) {
	t.Parallel()

	owner := &entity.User{ID: 7, Email: "alice@example.com"}

	t.Run("deletes an owned post and invalidates the cache", func(t *testing.T) {
		svc, fixtures := createTestPostService(t)

		fixtures.postRepo.EXPECT().Delete(context.Background(), int64(101), int64(7)).Return(true, nil)
		fixtures.cache.EXPECT().Invalidate(context.Background(), int64(7)).Return(nil)

		deleted, err := svc.Delete(context.Background(), 101, owner)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("reports false for a post that is missing or not owned", func(t *testing.T) {
		svc, fixtures := createTestPostService(t)

		fixtures.postRepo.EXPECT().Delete(context.Background(), int64(101), int64(7)).Return(false, nil)

		deleted, err := svc.Delete(context.Background(), 101, owner)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("propagates store failures", func(t *testing.T) {
		svc, fixtures := createTestPostService(t)

		fixtures.postRepo.EXPECT().
			Delete(context.Background(), int64(101), int64(7)).
			Return(false, errors.New("connection reset"))

		deleted, err := svc.Delete(context.Background(), 101, owner)
		require.Error(t, err)
		assert.False(t, deleted)
	})
}
