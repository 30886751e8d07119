package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"chirp/internal/domain/entity"
	domainerrors "chirp/internal/domain/errors"
	"chirp/internal/domain/repository"
	"chirp/internal/domain/service"
	mockRepo "chirp/internal/mocks/repository"
	mockService "chirp/internal/mocks/service"
	"chirp/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identityServiceFixtures struct {
	tokenService *mockService.MockTokenService
	userRepo     *mockRepo.MockUserRepository
}

func createTestIdentityService(t *testing.T) (usecase.IdentityUsecase, *identityServiceFixtures) {
	t.Helper()

	fixtures := &identityServiceFixtures{
		tokenService: mockService.NewMockTokenService(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewIdentityService(fixtures.tokenService, fixtures.userRepo, logger)

	return svc, fixtures
}

func TestIdentityService_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("resolves a valid token to its user", func(t *testing.T) {
		svc, fixtures := createTestIdentityService(t)

		user := &entity.User{ID: 42, Email: "alice@example.com"}
		fixtures.tokenService.EXPECT().Validate("good-token").Return(&service.Claims{UserID: 42}, nil)
		fixtures.userRepo.EXPECT().FindByID(context.Background(), int64(42)).Return(user, nil)

		resolved, err := svc.Resolve(context.Background(), "good-token")
		require.NoError(t, err)
		assert.Equal(t, user, resolved)
	})

	t.Run("rejects an invalid token as unauthenticated", func(t *testing.T) {
		svc, fixtures := createTestIdentityService(t)

		fixtures.tokenService.EXPECT().Validate("bad-token").Return(nil, service.ErrInvalidToken)

		resolved, err := svc.Resolve(context.Background(), "bad-token")
		require.Error(t, err)
		assert.Nil(t, resolved)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("rejects a token whose account no longer exists as unauthenticated", func(t *testing.T) {
		svc, fixtures := createTestIdentityService(t)

		fixtures.tokenService.EXPECT().Validate("orphan-token").Return(&service.Claims{UserID: 42}, nil)
		fixtures.userRepo.EXPECT().
			FindByID(context.Background(), int64(42)).
			Return(nil, repository.ErrUserNotFound)

		resolved, err := svc.Resolve(context.Background(), "orphan-token")
		require.Error(t, err)
		assert.Nil(t, resolved)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("does not mask store failures as unauthenticated", func(t *testing.T) {
		svc, fixtures := createTestIdentityService(t)

		fixtures.tokenService.EXPECT().Validate("good-token").Return(&service.Claims{UserID: 42}, nil)
		fixtures.userRepo.EXPECT().
			FindByID(context.Background(), int64(42)).
			Return(nil, errors.New("connection reset"))

		resolved, err := svc.Resolve(context.Background(), "good-token")
		require.Error(t, err)
		assert.Nil(t, resolved)
		assert.NotErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}
