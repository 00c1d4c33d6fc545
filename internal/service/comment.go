package service

import (
	"context"
	"log"
	"strings"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

// CommentService manages threaded comments on reviews, albums, news and
// shots.
type CommentService struct {
	comments      repository.CommentRepository
	reviews       repository.ReviewRepository
	notifications repository.NotificationRepository
	settings      repository.SettingsRepository
}

func NewCommentService(
	comments repository.CommentRepository,
	reviews repository.ReviewRepository,
	notifications repository.NotificationRepository,
	settings repository.SettingsRepository,
) *CommentService {
	return &CommentService{
		comments:      comments,
		reviews:       reviews,
		notifications: notifications,
		settings:      settings,
	}
}

// Create inserts a root comment or a reply. A reply's parent must exist and
// belong to the same target.
func (s *CommentService) Create(ctx context.Context, userID, targetType string, targetID int64, parentID *int64, body string) (*model.Comment, error) {
	if !validTargetType(targetType) {
		return nil, model.ErrInvalidTargetType
	}
	if strings.TrimSpace(body) == "" {
		return nil, model.ErrCommentBodyEmpty
	}

	if parentID != nil {
		parent, err := s.comments.GetByID(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if parent.TargetType != targetType || parent.TargetID != targetID {
			return nil, model.ErrParentMismatch
		}
	}

	comment := &model.Comment{
		UserID:          userID,
		TargetType:      targetType,
		TargetID:        targetID,
		ParentCommentID: parentID,
		Body:            body,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.notifyTargetAuthor(ctx, comment)

	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, userID string, commentID int64) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return model.ErrNotCommentAuthor
	}
	return s.comments.Delete(ctx, commentID)
}

func (s *CommentService) ListForTarget(ctx context.Context, targetType string, targetID int64) ([]model.Comment, error) {
	return s.comments.ListForTarget(ctx, targetType, targetID)
}

func (s *CommentService) CountForTarget(ctx context.Context, targetType string, targetID int64) (int, error) {
	return s.comments.CountForTarget(ctx, targetType, targetID)
}

// notifyTargetAuthor delivers a COMMENT notification to the review author
// when someone else comments on their review. Other target types have no
// single author to notify. Best-effort: the comment is already stored.
func (s *CommentService) notifyTargetAuthor(ctx context.Context, c *model.Comment) {
	if c.TargetType != model.TargetReview {
		return
	}

	review, err := s.reviews.GetByID(ctx, c.TargetID)
	if err != nil {
		log.Printf("[CommentService] Failed to load review for notification: id=%d err=%v", c.TargetID, err)
		return
	}
	if review.UserID == c.UserID {
		return
	}

	settings, err := s.settings.Get(ctx, review.UserID)
	if err != nil {
		log.Printf("[CommentService] Failed to load settings: user=%s err=%v", review.UserID, err)
		return
	}
	if settings != nil && !settings.NotifyComments {
		return
	}

	err = s.notifications.Create(ctx, &model.Notification{
		UserID:    review.UserID,
		Type:      model.NotificationComment,
		ActorID:   &c.UserID,
		ContentID: &c.TargetID,
		Message:   "commented on your review",
	})
	if err != nil {
		log.Printf("[CommentService] Failed to create notification: user=%s err=%v", review.UserID, err)
	}
}
