// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "chirp/internal/delivery/context"
	"chirp/internal/domain/entity"
	domainerrors "chirp/internal/domain/errors"
	"chirp/internal/domain/repository"
	"chirp/internal/domain/service"
	"chirp/internal/usecase"

	"github.com/pkg/errors"
)

const tokenTypeBearer = "bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process:
// uniqueness check, hash, persist, issue token. The password is hashed
// before entering the transaction; the plaintext is not retained or
// logged past this call.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting user registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Check whether the email is already taken. This gives the
		// common case a clean answer; the unique index on the store is
		// what actually closes the race against a concurrent signup.
		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("user registration failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		// 2. Persist the new user. Losing the insert race surfaces the
		// same ErrEmailAlreadyRegistered from the repository.
		newUser := &entity.User{
			Email:        input.Email,
			PasswordHash: hashedPassword,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("User registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	accessToken, err := srv.tokenService.Issue(registeredUser.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}
	srv.log(ctx).Debug("User registered successfully", slog.Int64("userID", registeredUser.ID))

	return &usecase.AuthOutput{AccessToken: accessToken, TokenType: tokenTypeBearer}, nil
}

// Login orchestrates the user login process. An unknown email and a
// wrong password are deliberately indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	var loggedInUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Find the user by email.
		user, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(err, "failed to find user by email")
		}

		// 2. Check the password.
		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}
		loggedInUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(err, "failed to execute user login transaction")
	}

	accessToken, err := srv.tokenService.Issue(loggedInUser.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", loggedInUser.ID))

	return &usecase.AuthOutput{AccessToken: accessToken, TokenType: tokenTypeBearer}, nil
}
