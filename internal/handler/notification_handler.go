package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/middleware"
	"github.com/gil10101/sokin-sub000/internal/models"
)

// NotificationManager defines the notification operations used by
// NotificationHandler.
type NotificationManager interface {
	List(ctx context.Context, q cqrs.ListNotificationsQuery) ([]models.Notification, error)
	MarkRead(ctx context.Context, cmd cqrs.MarkNotificationReadCommand) error
	MarkAllRead(ctx context.Context, cmd cqrs.MarkAllNotificationsReadCommand) error
}

type NotificationHandler struct {
	notifications NotificationManager
}

func NewNotificationHandler(notifications NotificationManager) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	notifications, err := h.notifications.List(c.Request.Context(), cqrs.ListNotificationsQuery{
		UserID:     userID,
		UnreadOnly: c.Query("unread") == "true",
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithData(c, http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	err := h.notifications.MarkRead(c.Request.Context(), cqrs.MarkNotificationReadCommand{
		NotificationID:   c.Param("notificationId"),
		RequestingUserID: userID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithMessage(c, http.StatusOK, nil, "Notification marked read")
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	err := h.notifications.MarkAllRead(c.Request.Context(), cqrs.MarkAllNotificationsReadCommand{UserID: userID})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	middleware.RespondWithMessage(c, http.StatusOK, nil, "All notifications marked read")
}
