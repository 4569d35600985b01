package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"declutter/internal/auth"
	"declutter/internal/model"
	"declutter/internal/service"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateCommentRequest represents a new comment.
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// CommentCreatedResponse is returned after a comment is stored.
type CommentCreatedResponse struct {
	Message string         `json:"message"`
	Comment *model.Comment `json:"comment"`
}

// List godoc
// @Summary List comments of a post, oldest first
// @Tags comments
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {array} model.Comment
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts/{id}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.commentService.List(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// Create godoc
// @Summary Comment on a post
// @Description The post owner is notified when the commenter is someone else.
// @Tags comments
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "Post ID"
// @Param request body CreateCommentRequest true "Comment"
// @Success 201 {object} CommentCreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts/{id}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.commentService.Create(c.Request().Context(), auth.Identity(c), c.Param("id"), req.Text)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, CommentCreatedResponse{
		Message: "comment saved",
		Comment: comment,
	})
}
