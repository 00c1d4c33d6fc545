package service

import (
	"context"
	"strings"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

// ReviewService manages reviews and the engagement-ranked feed.
type ReviewService struct {
	reviews repository.ReviewRepository
	movies  repository.MovieRepository
}

func NewReviewService(reviews repository.ReviewRepository, movies repository.MovieRepository) *ReviewService {
	return &ReviewService{reviews: reviews, movies: movies}
}

// Create validates and inserts a new review. It always inserts: nothing here
// enforces one review per user per movie. Callers that want single-review
// semantics check HasUserReviewed first and route to Update.
func (s *ReviewService) Create(ctx context.Context, userID string, movieID int64, body string, rating *float64, title *string) (*model.Review, error) {
	if strings.TrimSpace(body) == "" {
		return nil, model.ErrReviewBodyEmpty
	}
	if rating != nil && (*rating < 0 || *rating > 5) {
		return nil, model.ErrRatingOutOfRange
	}
	if _, err := s.movies.GetByID(ctx, movieID); err != nil {
		return nil, err
	}

	review := &model.Review{
		UserID:  userID,
		MovieID: movieID,
		Rating:  rating,
		Title:   title,
		Body:    body,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, userID string, reviewID int64, body string, rating *float64, title *string) error {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		return model.ErrNotReviewAuthor
	}

	if strings.TrimSpace(body) == "" {
		return model.ErrReviewBodyEmpty
	}
	if rating != nil && (*rating < 0 || *rating > 5) {
		return model.ErrRatingOutOfRange
	}

	review.Body = body
	review.Rating = rating
	review.Title = title

	return s.reviews.Update(ctx, review)
}

func (s *ReviewService) Delete(ctx context.Context, userID string, reviewID int64) error {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		return model.ErrNotReviewAuthor
	}
	return s.reviews.Delete(ctx, reviewID)
}

func (s *ReviewService) GetByID(ctx context.Context, reviewID int64) (*model.Review, error) {
	return s.reviews.GetByID(ctx, reviewID)
}

func (s *ReviewService) HasUserReviewed(ctx context.Context, userID string, movieID int64) (bool, error) {
	return s.reviews.HasUserReviewed(ctx, userID, movieID)
}

func (s *ReviewService) ListByMovie(ctx context.Context, movieID int64) ([]model.Review, error) {
	return s.reviews.ListByMovie(ctx, movieID)
}

func (s *ReviewService) ListByUser(ctx context.Context, userID string) ([]model.Review, error) {
	return s.reviews.ListByUser(ctx, userID)
}

// RecentReviewsByEngagementWithMovies is the "for you" feed: reviews joined
// with their movie, ordered by likes + comments descending. Ties stay in
// store-default order.
func (s *ReviewService) RecentReviewsByEngagementWithMovies(ctx context.Context, limit int) ([]model.ReviewWithMovie, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.reviews.RecentByEngagementWithMovies(ctx, limit)
}
