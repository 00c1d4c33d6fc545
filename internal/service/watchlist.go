package service

import (
	"context"
	"strings"
	"time"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

// WatchlistService manages named watchlist folders and their movies.
type WatchlistService struct {
	watchlists repository.WatchlistRepository
	movies     repository.MovieRepository
}

func NewWatchlistService(watchlists repository.WatchlistRepository, movies repository.MovieRepository) *WatchlistService {
	return &WatchlistService{watchlists: watchlists, movies: movies}
}

func (s *WatchlistService) CreateCategory(ctx context.Context, userID, name string) (*model.WatchlistCategory, error) {
	if strings.TrimSpace(name) == "" {
		return nil, model.ErrCategoryNameEmpty
	}

	category := &model.WatchlistCategory{UserID: userID, Name: name}
	if err := s.watchlists.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *WatchlistService) RenameCategory(ctx context.Context, userID string, categoryID int64, name string) error {
	if strings.TrimSpace(name) == "" {
		return model.ErrCategoryNameEmpty
	}
	if err := s.checkOwner(ctx, userID, categoryID); err != nil {
		return err
	}
	return s.watchlists.RenameCategory(ctx, categoryID, name)
}

// DeleteCategory removes the folder; its items cascade away at the store.
func (s *WatchlistService) DeleteCategory(ctx context.Context, userID string, categoryID int64) error {
	if err := s.checkOwner(ctx, userID, categoryID); err != nil {
		return err
	}
	return s.watchlists.DeleteCategory(ctx, categoryID)
}

func (s *WatchlistService) ListCategories(ctx context.Context, userID string) ([]model.WatchlistCategory, error) {
	return s.watchlists.ListCategories(ctx, userID)
}

func (s *WatchlistService) AddItem(ctx context.Context, userID string, categoryID, movieID int64) error {
	if err := s.checkOwner(ctx, userID, categoryID); err != nil {
		return err
	}
	if _, err := s.movies.GetByID(ctx, movieID); err != nil {
		return err
	}
	return s.watchlists.AddItem(ctx, categoryID, movieID, time.Now().UTC())
}

func (s *WatchlistService) RemoveItem(ctx context.Context, userID string, categoryID, movieID int64) error {
	if err := s.checkOwner(ctx, userID, categoryID); err != nil {
		return err
	}
	_, err := s.watchlists.RemoveItem(ctx, categoryID, movieID)
	return err
}

func (s *WatchlistService) ListItems(ctx context.Context, userID string, categoryID int64) ([]model.WatchlistEntry, error) {
	if err := s.checkOwner(ctx, userID, categoryID); err != nil {
		return nil, err
	}
	return s.watchlists.ListItems(ctx, categoryID)
}

func (s *WatchlistService) checkOwner(ctx context.Context, userID string, categoryID int64) error {
	category, err := s.watchlists.GetCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if category.UserID != userID {
		return model.ErrNotCategoryOwner
	}
	return nil
}
