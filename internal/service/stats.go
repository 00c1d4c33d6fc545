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

// StatsService manages the per-(user, movie) aggregate. Every mutation runs
// ensure-then-mutate inside one transaction, so callers never observe a
// partially initialized aggregate and racing ensures cannot duplicate the
// row.
type StatsService struct {
	db       *sqlx.DB
	stats    repository.StatsRepository
	activity repository.ActivityRepository
}

func NewStatsService(db *sqlx.DB, stats repository.StatsRepository, activity repository.ActivityRepository) *StatsService {
	return &StatsService{db: db, stats: stats, activity: activity}
}

// MarkWatched sets the watched flag, increments the watch counter and stamps
// the watch time.
func (s *StatsService) MarkWatched(ctx context.Context, userID string, movieID int64) error {
	now := time.Now().UTC()

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.stats.Ensure(ctx, tx, userID, movieID); err != nil {
			return err
		}
		return s.stats.MarkWatched(ctx, tx, userID, movieID, now)
	})
	if err != nil {
		return err
	}

	// Feed the watch-history derivation; best-effort after commit.
	logErr := s.activity.Insert(ctx, &model.UserActivity{
		UserID:     userID,
		ActionType: model.ActionView,
		TargetType: "movie",
		TargetID:   movieID,
	})
	if logErr != nil {
		log.Printf("[StatsService] Failed to record view activity: user=%s movie=%d err=%v", userID, movieID, logErr)
	}

	return nil
}

// ToggleFavorite flips the favorite flag and returns the new state.
func (s *StatsService) ToggleFavorite(ctx context.Context, userID string, movieID int64) (bool, error) {
	var state bool
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.stats.Ensure(ctx, tx, userID, movieID); err != nil {
			return err
		}
		var err error
		state, err = s.stats.ToggleFavorite(ctx, tx, userID, movieID)
		return err
	})
	return state, err
}

// ToggleWatchlist flips the quick watchlist flag and returns the new state.
func (s *StatsService) ToggleWatchlist(ctx context.Context, userID string, movieID int64) (bool, error) {
	var state bool
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.stats.Ensure(ctx, tx, userID, movieID); err != nil {
			return err
		}
		var err error
		state, err = s.stats.ToggleWatchlist(ctx, tx, userID, movieID)
		return err
	})
	return state, err
}

// SetRating stores the personal 0 to 5 rating on the aggregate.
func (s *StatsService) SetRating(ctx context.Context, userID string, movieID int64, rating float64) error {
	if rating < 0 || rating > 5 {
		return model.ErrRatingOutOfRange
	}

	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.stats.Ensure(ctx, tx, userID, movieID); err != nil {
			return err
		}
		return s.stats.SetRating(ctx, tx, userID, movieID, rating)
	})
}

// GetStats returns the aggregate, creating the default row first so the
// caller always sees a fully initialized record.
func (s *StatsService) GetStats(ctx context.Context, userID string, movieID int64) (*model.UserMovieStats, error) {
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		return s.stats.Ensure(ctx, tx, userID, movieID)
	})
	if err != nil {
		return nil, err
	}
	return s.stats.Get(ctx, userID, movieID)
}

func (s *StatsService) WatchedMovies(ctx context.Context, userID string) ([]model.Movie, error) {
	return s.stats.WatchedMovies(ctx, userID)
}

func (s *StatsService) FavoriteMovies(ctx context.Context, userID string) ([]model.Movie, error) {
	return s.stats.FavoriteMovies(ctx, userID)
}

func (s *StatsService) WatchlistMovies(ctx context.Context, userID string) ([]model.Movie, error) {
	return s.stats.WatchlistMovies(ctx, userID)
}

func (s *StatsService) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
