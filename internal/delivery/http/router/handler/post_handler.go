package handler

import (
	"log/slog"
	"net/http"

	"chirp/internal/delivery/http/middleware"
	"chirp/internal/delivery/http/response"
	domainerrors "chirp/internal/domain/errors"
	"chirp/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createPostRequest bounds the text in bytes, not runes, matching the
// storage column limit.
type createPostRequest struct {
	Text string `json:"text" validate:"required,maxbytes=1000000"`
}

// deletePostRequest identifies the post to remove. The ID travels in the
// request body rather than the path.
type deletePostRequest struct {
	PostID int64 `json:"post_id" validate:"required,gt=0"`
}

// PostHandler holds dependencies for the post endpoints. Every handler
// here runs behind the auth middleware and operates on the posts of the
// authenticated user only.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles post publication for the authenticated user.
func (h *PostHandler) Create(c echo.Context) error {
	user := middleware.GetUser(c)
	if user == nil {
		return domainerrors.ErrUnauthenticated.WrapMessage("no authenticated user on request")
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), req.Text, user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Post created successfully")
}

// List returns the authenticated user's posts in insertion order.
func (h *PostHandler) List(c echo.Context) error {
	user := middleware.GetUser(c)
	if user == nil {
		return domainerrors.ErrUnauthenticated.WrapMessage("no authenticated user on request")
	}

	outputs, err := h.uc.List(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "Posts retrieved successfully")
}

// Delete removes one of the authenticated user's posts. A post that does
// not exist and a post owned by someone else produce the same not-found
// answer.
func (h *PostHandler) Delete(c echo.Context) error {
	user := middleware.GetUser(c)
	if user == nil {
		return domainerrors.ErrUnauthenticated.WrapMessage("no authenticated user on request")
	}

	var req deletePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	deleted, err := h.uc.Delete(c.Request().Context(), req.PostID, user)
	if err != nil {
		return errors.WithStack(err)
	}
	if !deleted {
		return domainerrors.ErrPostNotFound.WrapMessage("delete removed nothing")
	}

	return response.NoContent(c)
}
