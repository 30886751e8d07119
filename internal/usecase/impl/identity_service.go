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

// identityService implements the IdentityUsecase interface.
type identityService struct {
	tokenService service.TokenService
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(
	tokenService service.TokenService,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.IdentityUsecase {
	return &identityService{
		tokenService: tokenService,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve validates the token and loads the user it names. A rejected
// token and a subject whose account no longer exists both collapse into
// ErrUnauthenticated, so the caller learns nothing about which it was.
func (srv *identityService) Resolve(ctx context.Context, tokenString string) (*entity.User, error) {
	claims, err := srv.tokenService.Validate(tokenString)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("token validation failed")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The token outlived its account.
			return nil, domainerrors.ErrUnauthenticated.WrapMessage("token subject no longer exists")
		}
		srv.log(ctx).Error("Failed to load token subject", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}
