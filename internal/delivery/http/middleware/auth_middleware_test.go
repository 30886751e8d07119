package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"chirp/internal/domain/entity"
	domainerrors "chirp/internal/domain/errors"
	mockUsecase "chirp/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func invokeAuthenticate(t *testing.T, identityUC *mockUsecase.MockIdentityUsecase, authHeader string) (*entity.User, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var seenUser *entity.User
	next := func(c echo.Context) error {
		seenUser = GetUser(c)

		return nil
	}

	m := NewAuthMiddleware(identityUC)
	err := m.Authenticate(next)(c)

	return seenUser, err
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("resolves a bearer token and exposes the user to handlers", func(t *testing.T) {
		identityUC := mockUsecase.NewMockIdentityUsecase(t)
		user := &entity.User{ID: 7, Email: "alice@example.com"}
		identityUC.EXPECT().Resolve(mock.Anything, "good-token").Return(user, nil)

		seenUser, err := invokeAuthenticate(t, identityUC, "Bearer good-token")
		require.NoError(t, err)
		assert.Equal(t, user, seenUser)
	})

	t.Run("rejects a missing authorization header", func(t *testing.T) {
		identityUC := mockUsecase.NewMockIdentityUsecase(t)

		_, err := invokeAuthenticate(t, identityUC, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("rejects a non-bearer scheme", func(t *testing.T) {
		identityUC := mockUsecase.NewMockIdentityUsecase(t)

		_, err := invokeAuthenticate(t, identityUC, "Basic YWxpY2U6cGFzcw==")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("propagates a rejected token as unauthenticated", func(t *testing.T) {
		identityUC := mockUsecase.NewMockIdentityUsecase(t)
		identityUC.EXPECT().
			Resolve(mock.Anything, "bad-token").
			Return(nil, domainerrors.ErrUnauthenticated.WrapMessage("token validation failed"))

		_, err := invokeAuthenticate(t, identityUC, "Bearer bad-token")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}
