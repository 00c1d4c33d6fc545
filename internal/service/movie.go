package service

import (
	"context"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

// MovieService is a thin catalog facade over the movie repository.
type MovieService struct {
	movies repository.MovieRepository
}

func NewMovieService(movies repository.MovieRepository) *MovieService {
	return &MovieService{movies: movies}
}

func (s *MovieService) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	return s.movies.GetByID(ctx, id)
}

func (s *MovieService) List(ctx context.Context, filter model.MovieFilter) ([]model.Movie, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return s.movies.List(ctx, filter)
}

func (s *MovieService) Create(ctx context.Context, m *model.Movie) error {
	return s.movies.Create(ctx, m)
}

func (s *MovieService) Update(ctx context.Context, m *model.Movie) error {
	return s.movies.Update(ctx, m)
}

// Delete removes the movie. Album memberships, watchlist items and reviews
// cascade away; shots keep their row with the movie reference nulled.
func (s *MovieService) Delete(ctx context.Context, id int64) error {
	return s.movies.Delete(ctx, id)
}

func (s *MovieService) Count(ctx context.Context) (int, error) {
	return s.movies.Count(ctx)
}
