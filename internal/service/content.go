package service

import (
	"context"
	"strings"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

// ContentService serves the editorial feed: news items and user-posted shots.
type ContentService struct {
	news  repository.NewsRepository
	shots repository.ShotRepository
}

func NewContentService(news repository.NewsRepository, shots repository.ShotRepository) *ContentService {
	return &ContentService{news: news, shots: shots}
}

func (s *ContentService) GetNews(ctx context.Context, id int64) (*model.News, error) {
	return s.news.GetByID(ctx, id)
}

func (s *ContentService) RecentNews(ctx context.Context, limit int) ([]model.News, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.news.ListRecent(ctx, limit)
}

func (s *ContentService) PostShot(ctx context.Context, userID, imageURL, caption string, movieID *int64) (*model.Shot, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, model.ErrShotImageEmpty
	}

	shot := &model.Shot{
		UserID:   userID,
		MovieID:  movieID,
		ImageURL: imageURL,
		Caption:  caption,
	}
	if err := s.shots.Create(ctx, shot); err != nil {
		return nil, err
	}
	return shot, nil
}

func (s *ContentService) GetShot(ctx context.Context, id int64) (*model.Shot, error) {
	return s.shots.GetByID(ctx, id)
}

func (s *ContentService) ShotsByMovie(ctx context.Context, movieID int64) ([]model.Shot, error) {
	return s.shots.ListByMovie(ctx, movieID)
}

func (s *ContentService) RecentShots(ctx context.Context, limit int) ([]model.Shot, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.shots.ListRecent(ctx, limit)
}
