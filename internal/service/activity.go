package service

import (
	"context"
	"time"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

// ActivityService wraps the append-only activity log and its derivations.
type ActivityService struct {
	activity repository.ActivityRepository
}

func NewActivityService(activity repository.ActivityRepository) *ActivityService {
	return &ActivityService{activity: activity}
}

func (s *ActivityService) Record(ctx context.Context, userID, actionType, targetType string, targetID int64) error {
	return s.activity.Insert(ctx, &model.UserActivity{
		UserID:     userID,
		ActionType: actionType,
		TargetType: targetType,
		TargetID:   targetID,
	})
}

// WatchHistory derives the most recently viewed movies from the log.
func (s *ActivityService) WatchHistory(ctx context.Context, userID string, limit int) ([]model.Movie, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.activity.WatchHistory(ctx, userID, limit)
}

func (s *ActivityService) ViewCount(ctx context.Context, targetType string, targetID int64) (int, error) {
	return s.activity.ViewCount(ctx, targetType, targetID)
}

// DeleteOldActivity removes log rows older than the retention window and
// returns how many were removed.
func (s *ActivityService) DeleteOldActivity(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-retention)
	return s.activity.DeleteOlderThan(ctx, cutoff)
}
