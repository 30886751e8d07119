package middleware

import (
	"strings"

	"chirp/internal/domain/entity"
	domainerrors "chirp/internal/domain/errors"
	"chirp/internal/usecase"

	"github.com/labstack/echo/v4"
)

// contextKeyUser is the echo.Context key the authenticated user is stored under.
const contextKeyUser = "authenticatedUser"

// AuthMiddleware resolves the bearer token on each request into the user
// it names before any protected handler runs.
type AuthMiddleware struct {
	identityUC usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identityUC usecase.IdentityUsecase) *AuthMiddleware {
	return &AuthMiddleware{identityUC: identityUC}
}

// Authenticate validates the Authorization header and loads the current
// user onto the request context. A missing header, a malformed scheme,
// a rejected token and a vanished account all fail with the same
// unauthenticated error.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is not a bearer token")
		}

		user, err := m.identityUC.Resolve(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		SetUser(c, user)

		return next(c)
	}
}

// SetUser stores the authenticated user on the echo context.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(contextKeyUser, user)
}

// GetUser returns the authenticated user set by Authenticate, or nil when
// called outside a protected route.
func GetUser(c echo.Context) *entity.User {
	user, _ := c.Get(contextKeyUser).(*entity.User)

	return user
}
