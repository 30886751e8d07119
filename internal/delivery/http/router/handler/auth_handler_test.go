package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chirp/internal/delivery/http/validator"
	domainerrors "chirp/internal/domain/errors"
	mockUsecase "chirp/internal/mocks/usecase"
	"chirp/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthHandler(uc, logger), uc
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("returns 201 with the issued token", func(t *testing.T) {
		h, uc := newTestAuthHandler(t)
		uc.EXPECT().
			Register(mock.Anything, &usecase.RegisterInput{Email: "alice@example.com", Password: "open sesame"}).
			Return(&usecase.AuthOutput{AccessToken: "signed-token", TokenType: "bearer"}, nil)

		c, rec := newAuthTestContext(t, `{"email":"alice@example.com","password":"open sesame"}`)
		require.NoError(t, h.Signup(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"access_token":"signed-token"`)
		assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
	})

	t.Run("rejects a malformed email before the usecase runs", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)

		c, _ := newAuthTestContext(t, `{"email":"not-an-email","password":"open sesame"}`)
		err := h.Signup(c)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("rejects a password shorter than eight characters", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)

		c, _ := newAuthTestContext(t, `{"email":"alice@example.com","password":"short"}`)
		err := h.Signup(c)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("propagates a duplicate email error untouched", func(t *testing.T) {
		h, uc := newTestAuthHandler(t)
		uc.EXPECT().
			Register(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrEmailAlreadyRegistered)

		c, _ := newAuthTestContext(t, `{"email":"alice@example.com","password":"open sesame"}`)
		err := h.Signup(c)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns 200 with the issued token", func(t *testing.T) {
		h, uc := newTestAuthHandler(t)
		uc.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Email: "alice@example.com", Password: "open sesame"}).
			Return(&usecase.AuthOutput{AccessToken: "signed-token", TokenType: "bearer"}, nil)

		c, rec := newAuthTestContext(t, `{"email":"alice@example.com","password":"open sesame"}`)
		require.NoError(t, h.Login(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"access_token":"signed-token"`)
	})

	t.Run("propagates invalid credentials untouched", func(t *testing.T) {
		h, uc := newTestAuthHandler(t)
		uc.EXPECT().
			Login(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidCredentials)

		c, _ := newAuthTestContext(t, `{"email":"alice@example.com","password":"wrong"}`)
		err := h.Login(c)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}
