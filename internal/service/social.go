package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

// SocialService owns the membership toggles: like, follow, save-album. Each
// toggle runs delete-then-insert inside one transaction so the read-flip-write
// sequence serializes per key, and returns the resulting state.
type SocialService struct {
	db          *sqlx.DB
	likes       repository.LikeRepository
	follows     repository.FollowRepository
	savedAlbums repository.SavedAlbumRepository
	activity    repository.ActivityRepository
}

func NewSocialService(
	db *sqlx.DB,
	likes repository.LikeRepository,
	follows repository.FollowRepository,
	savedAlbums repository.SavedAlbumRepository,
	activity repository.ActivityRepository,
) *SocialService {
	return &SocialService{
		db:          db,
		likes:       likes,
		follows:     follows,
		savedAlbums: savedAlbums,
		activity:    activity,
	}
}

// ToggleLike flips the like membership and returns the new state: true means
// the row is now present.
func (s *SocialService) ToggleLike(ctx context.Context, userID, targetType string, targetID int64) (bool, error) {
	if !validTargetType(targetType) {
		return false, model.ErrInvalidTargetType
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	deleted, err := s.likes.Delete(ctx, tx, userID, targetType, targetID)
	if err != nil {
		return false, err
	}
	if !deleted {
		if _, err := s.likes.Insert(ctx, tx, userID, targetType, targetID, time.Now().UTC()); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit transaction: %w", err)
	}

	nowLiked := !deleted

	// Log to the activity feed after commit; a logging failure must not
	// undo the toggle.
	if nowLiked {
		err := s.activity.Insert(ctx, &model.UserActivity{
			UserID:     userID,
			ActionType: model.ActionLike,
			TargetType: targetType,
			TargetID:   targetID,
		})
		if err != nil {
			log.Printf("[SocialService] Failed to record like activity: user=%s target=%s/%d err=%v",
				userID, targetType, targetID, err)
		}
	}

	return nowLiked, nil
}

func (s *SocialService) IsLiked(ctx context.Context, userID, targetType string, targetID int64) (bool, error) {
	return s.likes.Exists(ctx, userID, targetType, targetID)
}

func (s *SocialService) LikeCount(ctx context.Context, targetType string, targetID int64) (int, error) {
	return s.likes.CountForTarget(ctx, targetType, targetID)
}

// ToggleFollow flips the directed follow edge. Self-follow is deliberately
// not guarded.
func (s *SocialService) ToggleFollow(ctx context.Context, followerID, followingID string) (bool, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	deleted, err := s.follows.Delete(ctx, tx, followerID, followingID)
	if err != nil {
		return false, err
	}
	if !deleted {
		if _, err := s.follows.Insert(ctx, tx, followerID, followingID, time.Now().UTC()); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit transaction: %w", err)
	}

	return !deleted, nil
}

func (s *SocialService) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	return s.follows.Exists(ctx, followerID, followingID)
}

func (s *SocialService) Followers(ctx context.Context, userID string) ([]model.UserSummary, error) {
	return s.follows.Followers(ctx, userID)
}

func (s *SocialService) Following(ctx context.Context, userID string) ([]model.UserSummary, error) {
	return s.follows.Following(ctx, userID)
}

// ToggleSaveAlbum bookmarks or un-bookmarks someone else's album.
func (s *SocialService) ToggleSaveAlbum(ctx context.Context, userID string, albumID int64) (bool, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	deleted, err := s.savedAlbums.Delete(ctx, tx, userID, albumID)
	if err != nil {
		return false, err
	}
	if !deleted {
		if _, err := s.savedAlbums.Insert(ctx, tx, userID, albumID, time.Now().UTC()); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit transaction: %w", err)
	}

	return !deleted, nil
}

func (s *SocialService) IsAlbumSaved(ctx context.Context, userID string, albumID int64) (bool, error) {
	return s.savedAlbums.Exists(ctx, userID, albumID)
}

func (s *SocialService) SavedAlbums(ctx context.Context, userID string) ([]model.Album, error) {
	return s.savedAlbums.ListByUser(ctx, userID)
}

func validTargetType(t string) bool {
	switch t {
	case model.TargetReview, model.TargetAlbum, model.TargetNews, model.TargetShot:
		return true
	}
	return false
}
