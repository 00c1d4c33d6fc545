package service

import (
	"context"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

// UserService handles profile reads and edits.
type UserService struct {
	users   repository.UserRepository
	follows repository.FollowRepository
}

func NewUserService(users repository.UserRepository, follows repository.FollowRepository) *UserService {
	return &UserService{users: users, follows: follows}
}

func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.users.GetByUsername(ctx, username)
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, upd *model.ProfileUpdate) error {
	return s.users.UpdateProfile(ctx, id, upd)
}

func (s *UserService) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	return s.users.ExistsByUsername(ctx, username)
}

func (s *UserService) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	return s.users.ExistsByEmail(ctx, email)
}

func (s *UserService) Search(ctx context.Context, prefix string, limit int) ([]model.UserSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.users.Search(ctx, prefix, limit)
}

// FollowCounts returns follower and following totals for a profile header.
func (s *UserService) FollowCounts(ctx context.Context, userID string) (followers, following int, err error) {
	followers, err = s.follows.CountFollowers(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	following, err = s.follows.CountFollowing(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	return followers, following, nil
}
