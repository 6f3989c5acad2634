package handler

import (
	"log/slog"
	"net/http"

	"jobsearch/internal/delivery/http/middleware"
	"jobsearch/internal/delivery/http/response"
	"jobsearch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	FilterUC usecase.FilterUsecase
	Logger   *slog.Logger
}

// NotificationHandler holds dependencies for notification-feed handlers
type NotificationHandler struct {
	filterUC usecase.FilterUsecase
	logger   *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		filterUC: params.FilterUC,
		logger:   params.Logger,
	}
}

// GetNotificationFeed handles retrieving the recruiter's notification feed
func (h *NotificationHandler) GetNotificationFeed(c echo.Context) error {
	recruiterID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	feed, err := h.filterUC.GetNotificationFeed(c.Request().Context(), recruiterID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, feed, "Notifications retrieved successfully")
}

// MarkNotificationRead handles marking one notification as read
func (h *NotificationHandler) MarkNotificationRead(c echo.Context) error {
	recruiterID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	notificationID, err := uuid.Parse(c.Param("notificationId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.filterUC.MarkNotificationRead(c.Request().Context(), recruiterID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification marked read"}, "Notification marked read")
}

// MarkAllNotificationsRead handles marking every notification as read
func (h *NotificationHandler) MarkAllNotificationsRead(c echo.Context) error {
	recruiterID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.filterUC.MarkAllNotificationsRead(c.Request().Context(), recruiterID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "All notifications marked read"}, "All notifications marked read")
}
