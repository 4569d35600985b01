package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"declutter/internal/auth"
	"declutter/internal/model"
	"declutter/internal/service"
)

// PostHandler handles post endpoints.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePostRequest represents a new post.
type CreatePostRequest struct {
	Name     string `json:"name" validate:"required"`
	Image    string `json:"image" validate:"required"`
	Reason   string `json:"reason" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// PostCreatedResponse is returned after a post is stored.
type PostCreatedResponse struct {
	Message string      `json:"message"`
	Post    *model.Post `json:"post"`
}

// MessageResponse carries a human readable status.
type MessageResponse struct {
	Message string `json:"message"`
}

// Create godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body CreatePostRequest true "Post data"
// @Success 201 {object} PostCreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req CreatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.postService.Create(c.Request().Context(), auth.Identity(c), service.PostInput{
		Name:     req.Name,
		Image:    req.Image,
		Reason:   req.Reason,
		Category: req.Category,
	})
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, PostCreatedResponse{
		Message: "post saved",
		Post:    post,
	})
}

// ListMine godoc
// @Summary List the caller's posts, newest first
// @Tags posts
// @Produce json
// @Security TokenAuth
// @Success 200 {array} model.Post
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts/me [get]
func (h *PostHandler) ListMine(c echo.Context) error {
	posts, err := h.postService.ListByEmail(c.Request().Context(), auth.Identity(c))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// ListByUsername godoc
// @Summary List posts of a username
// @Description The owner email is derived as username@example.com.
// @Tags posts
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} model.Post
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts/user/{username} [get]
func (h *PostHandler) ListByUsername(c echo.Context) error {
	posts, err := h.postService.ListByUsername(c.Request().Context(), pathParam(c, "username"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// ListByEmail godoc
// @Summary List posts of an email
// @Tags posts
// @Produce json
// @Param email path string true "Owner email"
// @Success 200 {array} model.Post
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts/user-email/{email} [get]
func (h *PostHandler) ListByEmail(c echo.Context) error {
	posts, err := h.postService.ListByEmail(c.Request().Context(), pathParam(c, "email"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// Get godoc
// @Summary Get a post
// @Tags posts
// @Produce json
// @Security TokenAuth
// @Param id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.postService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, post)
}

// Delete godoc
// @Summary Delete one of the caller's posts
// @Tags posts
// @Produce json
// @Security TokenAuth
// @Param id path string true "Post ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.postService.Delete(c.Request().Context(), auth.Identity(c), c.Param("id")); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "post deleted"})
}
