package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"chirp/config"
	"chirp/internal/domain/entity"
	domainerrors "chirp/internal/domain/errors"
	"chirp/internal/domain/repository"
	"chirp/internal/infra/auth"
	mockRepo "chirp/internal/mocks/repository"
	"chirp/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryUserStore backs the mocked repository with a map so the full
// register -> login -> resolve flow runs against real hashing and real
// token signing.
type memoryUserStore struct {
	mu      sync.Mutex
	nextID  int64
	byEmail map[string]*entity.User
	byID    map[int64]*entity.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{
		nextID:  1,
		byEmail: make(map[string]*entity.User),
		byID:    make(map[int64]*entity.User),
	}
}

func (s *memoryUserStore) findByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}

	return nil, repository.ErrUserNotFound
}

func (s *memoryUserStore) findByID(_ context.Context, id int64) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.byID[id]; ok {
		return user, nil
	}

	return nil, repository.ErrUserNotFound
}

func (s *memoryUserStore) create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[user.Email]; ok {
		return domainerrors.ErrEmailAlreadyRegistered
	}
	user.ID = s.nextID
	s.nextID++
	stored := *user
	s.byEmail[user.Email] = &stored
	s.byID[user.ID] = &stored

	return nil
}

func (s *memoryUserStore) repo(t *testing.T) *mockRepo.MockUserRepository {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).RunAndReturn(s.findByEmail).Maybe()
	userRepo.EXPECT().FindByID(mock.Anything, mock.Anything).RunAndReturn(s.findByID).Maybe()
	userRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(s.create).Maybe()

	return userRepo
}

func TestAuthFlow_RegisterLoginResolve(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := newMemoryUserStore()
	userRepo := store.repo(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Minute}}
	cfg.SecretKey.Access = "flow-test-secret"
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	authSvc := NewAuthService(txManager, hasher, tokenService, logger)
	identitySvc := NewIdentityService(tokenService, userRepo, logger)

	ctx := context.Background()
	creds := &usecase.RegisterInput{Email: "alice@example.com", Password: "open sesame"}

	// Register, then resolve the registration token.
	registered, err := authSvc.Register(ctx, creds)
	require.NoError(t, err)
	require.NotEmpty(t, registered.AccessToken)

	user, err := identitySvc.Resolve(ctx, registered.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	// A second registration for the same email must fail.
	_, err = authSvc.Register(ctx, creds)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)

	// Login with the same credentials, resolve again.
	loggedIn, err := authSvc.Login(ctx, &usecase.LoginInput{Email: creds.Email, Password: creds.Password})
	require.NoError(t, err)

	user, err = identitySvc.Resolve(ctx, loggedIn.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	// Wrong password and unknown email fail identically.
	_, wrongPassErr := authSvc.Login(ctx, &usecase.LoginInput{Email: creds.Email, Password: "not it"})
	_, noUserErr := authSvc.Login(ctx, &usecase.LoginInput{Email: "bob@example.com", Password: creds.Password})
	assert.ErrorIs(t, wrongPassErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, noUserErr, domainerrors.ErrInvalidCredentials)

	// A garbage token never resolves.
	_, err = identitySvc.Resolve(ctx, "not-a-token")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
