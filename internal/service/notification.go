package service

import (
	"context"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

// NotificationService delivers and lists in-app notifications.
type NotificationService struct {
	notifications repository.NotificationRepository
}

func NewNotificationService(notifications repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) Notify(ctx context.Context, n *model.Notification) error {
	return s.notifications.Create(ctx, n)
}

// ListForUser returns newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID string, limit int) ([]model.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.notifications.ListForUser(ctx, userID, limit)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return s.notifications.MarkRead(ctx, userID, ids)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notifications.MarkAllRead(ctx, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.notifications.UnreadCount(ctx, userID)
}
