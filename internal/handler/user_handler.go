package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"declutter/internal/auth"
	"declutter/internal/service"
)

// UserHandler handles the caller's profile endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// ProfileImageRequest carries a new profile image (URL or data URI).
type ProfileImageRequest struct {
	Image string `json:"image" validate:"required"`
}

// ProfileImageResponse is the stored image, null when never set.
type ProfileImageResponse struct {
	ProfileImage *string `json:"profileImage"`
}

// ProfileImageSavedResponse is returned after the image is stored.
type ProfileImageSavedResponse struct {
	Success      bool   `json:"success"`
	ProfileImage string `json:"profileImage"`
}

// GetProfileImage godoc
// @Summary Get the caller's profile image
// @Tags user
// @Produce json
// @Security TokenAuth
// @Success 200 {object} ProfileImageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/profile-image [get]
func (h *UserHandler) GetProfileImage(c echo.Context) error {
	image, err := h.svc.GetProfileImage(c.Request().Context(), auth.Identity(c))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ProfileImageResponse{ProfileImage: image})
}

// SetProfileImage godoc
// @Summary Set the caller's profile image
// @Tags user
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body ProfileImageRequest true "Image"
// @Success 200 {object} ProfileImageSavedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/profile-image [put]
func (h *UserHandler) SetProfileImage(c echo.Context) error {
	var req ProfileImageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	image, err := h.svc.SetProfileImage(c.Request().Context(), auth.Identity(c), req.Image)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ProfileImageSavedResponse{Success: true, ProfileImage: image})
}
