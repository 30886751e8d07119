package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"chirp/internal/domain/entity"
	domainerrors "chirp/internal/domain/errors"
	"chirp/internal/domain/repository"
	mockRepo "chirp/internal/mocks/repository"
	mockService "chirp/internal/mocks/service"
	"chirp/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) (usecase.AuthUsecase, *authServiceFixtures) {
	t.Helper()

	fixtures := &authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(fixtures.txManager, fixtures.hasher, fixtures.tokenService, logger)

	return service, fixtures
}

// passThroughTx wires the mocked transaction manager to run the given
// function against a factory that hands out the fixture repositories.
func passThroughTx(t *testing.T, fixtures *authServiceFixtures) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(fixtures.userRepo).Maybe()

	fixtures.txManager.EXPECT().
		Execute(context.Background(), mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	input := &usecase.RegisterInput{Email: "alice@example.com", Password: "open sesame"}

	t.Run("registers a new user and returns a bearer token", func(t *testing.T) {
		service, fixtures := createTestAuthService(t)

		fixtures.hasher.EXPECT().Hash("open sesame").Return("$2a$10$hash", nil)
		passThroughTx(t, fixtures)
		fixtures.userRepo.EXPECT().
			FindByEmail(context.Background(), "alice@example.com").
			Return(nil, repository.ErrUserNotFound)
		fixtures.userRepo.EXPECT().
			Create(context.Background(), &entity.User{Email: "alice@example.com", PasswordHash: "$2a$10$hash"}).
			RunAndReturn(func(_ context.Context, user *entity.User) error {
				user.ID = 7

				return nil
			})
		fixtures.tokenService.EXPECT().Issue(int64(7)).Return("signed-token", nil)

		output, err := service.Register(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "signed-token", output.AccessToken)
		assert.Equal(t, "bearer", output.TokenType)
	})

	t.Run("rejects an email that is already registered", func(t *testing.T) {
		service, fixtures := createTestAuthService(t)

		fixtures.hasher.EXPECT().Hash("open sesame").Return("$2a$10$hash", nil)
		passThroughTx(t, fixtures)
		fixtures.userRepo.EXPECT().
			FindByEmail(context.Background(), "alice@example.com").
			Return(&entity.User{ID: 3, Email: "alice@example.com"}, nil)

		output, err := service.Register(context.Background(), input)
		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	})

	t.Run("reports a lost insert race as the same duplicate error", func(t *testing.T) {
		service, fixtures := createTestAuthService(t)

		fixtures.hasher.EXPECT().Hash("open sesame").Return("$2a$10$hash", nil)
		passThroughTx(t, fixtures)
		fixtures.userRepo.EXPECT().
			FindByEmail(context.Background(), "alice@example.com").
			Return(nil, repository.ErrUserNotFound)
		fixtures.userRepo.EXPECT().
			Create(context.Background(), &entity.User{Email: "alice@example.com", PasswordHash: "$2a$10$hash"}).
			Return(domainerrors.ErrEmailAlreadyRegistered)

		output, err := service.Register(context.Background(), input)
		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	})

	t.Run("propagates hashing failures without touching the store", func(t *testing.T) {
		service, fixtures := createTestAuthService(t)

		fixtures.hasher.EXPECT().Hash("open sesame").Return("", errors.New("cost out of range"))

		output, err := service.Register(context.Background(), input)
		require.Error(t, err)
		assert.Nil(t, output)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	input := &usecase.LoginInput{Email: "alice@example.com", Password: "open sesame"}
	storedUser := &entity.User{ID: 7, Email: "alice@example.com", PasswordHash: "$2a$10$hash"}

	t.Run("logs in with correct credentials", func(t *testing.T) {
		service, fixtures := createTestAuthService(t)

		passThroughTx(t, fixtures)
		fixtures.userRepo.EXPECT().
			FindByEmail(context.Background(), "alice@example.com").
			Return(storedUser, nil)
		fixtures.hasher.EXPECT().Check("open sesame", "$2a$10$hash").Return(true)
		fixtures.tokenService.EXPECT().Issue(int64(7)).Return("signed-token", nil)

		output, err := service.Login(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "signed-token", output.AccessToken)
		assert.Equal(t, "bearer", output.TokenType)
	})

	t.Run("rejects an unknown email with invalid credentials", func(t *testing.T) {
		service, fixtures := createTestAuthService(t)

		passThroughTx(t, fixtures)
		fixtures.userRepo.EXPECT().
			FindByEmail(context.Background(), "alice@example.com").
			Return(nil, repository.ErrUserNotFound)

		output, err := service.Login(context.Background(), input)
		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("rejects a wrong password with the same invalid credentials error", func(t *testing.T) {
		service, fixtures := createTestAuthService(t)

		passThroughTx(t, fixtures)
		fixtures.userRepo.EXPECT().
			FindByEmail(context.Background(), "alice@example.com").
			Return(storedUser, nil)
		fixtures.hasher.EXPECT().Check("open sesame", "$2a$10$hash").Return(false)

		output, err := service.Login(context.Background(), input)
		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("does not issue a token when the transaction fails", func(t *testing.T) {
		service, fixtures := createTestAuthService(t)

		fixtures.txManager.EXPECT().
			Execute(context.Background(), mock.Anything).
			Return(errors.New("connection reset"))

		output, err := service.Login(context.Background(), input)
		require.Error(t, err)
		assert.Nil(t, output)
	})
}
