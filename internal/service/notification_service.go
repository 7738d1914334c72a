package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/models"
	"github.com/gil10101/sokin-sub000/internal/repository"
	"github.com/gil10101/sokin-sub000/internal/utils"
)

// NotificationService reads and acknowledges notifications. Creation
// goes through Notify, used by the background worker.
type NotificationService struct {
	notifications *repository.NotificationRepository
}

func NewNotificationService(notifications *repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// Notify records a notification for the user.
func (s *NotificationService) Notify(ctx context.Context, userID, notifType, title, message string) (*models.Notification, error) {
	n := &models.Notification{
		ID:        utils.GenerateID(utils.NotificationPrefix),
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NotificationService) List(ctx context.Context, q cqrs.ListNotificationsQuery) ([]models.Notification, error) {
	return s.notifications.ListByUser(ctx, q.UserID, q.UnreadOnly)
}

func (s *NotificationService) MarkRead(ctx context.Context, cmd cqrs.MarkNotificationReadCommand) error {
	n, err := s.notifications.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		return err
	}
	if n.UserID != cmd.RequestingUserID {
		return fmt.Errorf("forbidden")
	}
	return s.notifications.MarkRead(ctx, n.ID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, cmd cqrs.MarkAllNotificationsReadCommand) error {
	return s.notifications.MarkAllRead(ctx, cmd.UserID)
}
