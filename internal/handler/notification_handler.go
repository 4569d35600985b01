package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"declutter/internal/auth"
	"declutter/internal/service"
)

// NotificationHandler handles notification endpoints.
type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// CreateNotificationRequest represents a notification sent directly by a client.
type CreateNotificationRequest struct {
	ToEmail string `json:"toEmail" validate:"required"`
	Type    string `json:"type" validate:"required"`
	PostID  string `json:"postId" validate:"required"`
}

// ListMine godoc
// @Summary List the caller's notifications, newest first
// @Tags notifications
// @Produce json
// @Security TokenAuth
// @Success 200 {array} model.Notification
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /notifications/me [get]
func (h *NotificationHandler) ListMine(c echo.Context) error {
	notifications, err := h.notificationService.ListForRecipient(c.Request().Context(), auth.Identity(c))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, notifications)
}

// Create godoc
// @Summary Create a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body CreateNotificationRequest true "Notification"
// @Success 201 {object} model.Notification
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /notifications [post]
func (h *NotificationHandler) Create(c echo.Context) error {
	var req CreateNotificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	notification, err := h.notificationService.Create(c.Request().Context(), auth.Identity(c), service.NotificationInput{
		ToEmail: req.ToEmail,
		Type:    req.Type,
		PostID:  req.PostID,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, notification)
}
