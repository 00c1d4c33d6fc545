package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/model"
)

// statsRepository implements StatsRepository using sqlx
type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

// Ensure inserts the default-valued aggregate if absent. DO NOTHING on
// conflict makes two racing ensures converge on a single row.
func (r *statsRepository) Ensure(ctx context.Context, tx *sqlx.Tx, userID string, movieID int64) error {
	query := `
		INSERT INTO user_movie_stats (user_id, movie_id)
		VALUES (?, ?)
		ON CONFLICT (user_id, movie_id) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, query, userID, movieID); err != nil {
		return fmt.Errorf("failed to ensure stats row: %w", err)
	}
	return nil
}

func (r *statsRepository) Get(ctx context.Context, userID string, movieID int64) (*model.UserMovieStats, error) {
	query := `
		SELECT user_id, movie_id, is_watched, times_watched, last_watched_at,
		       is_favorite, in_watchlist, personal_rating
		FROM user_movie_stats
		WHERE user_id = ? AND movie_id = ?
	`
	var s model.UserMovieStats
	err := r.db.GetContext(ctx, &s, query, userID, movieID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &s, nil
}

func (r *statsRepository) MarkWatched(ctx context.Context, tx *sqlx.Tx, userID string, movieID int64, at time.Time) error {
	query := `
		UPDATE user_movie_stats
		SET is_watched = 1, times_watched = times_watched + 1, last_watched_at = ?
		WHERE user_id = ? AND movie_id = ?
	`
	if _, err := tx.ExecContext(ctx, query, at, userID, movieID); err != nil {
		return fmt.Errorf("failed to mark watched: %w", err)
	}
	return nil
}

func (r *statsRepository) ToggleFavorite(ctx context.Context, tx *sqlx.Tx, userID string, movieID int64) (bool, error) {
	return r.toggleFlag(ctx, tx, "is_favorite", userID, movieID)
}

func (r *statsRepository) ToggleWatchlist(ctx context.Context, tx *sqlx.Tx, userID string, movieID int64) (bool, error) {
	return r.toggleFlag(ctx, tx, "in_watchlist", userID, movieID)
}

// toggleFlag flips a boolean column and reads the resulting state back inside
// the caller's transaction. Column names are fixed constants, never input.
func (r *statsRepository) toggleFlag(ctx context.Context, tx *sqlx.Tx, column, userID string, movieID int64) (bool, error) {
	update := fmt.Sprintf(
		`UPDATE user_movie_stats SET %s = 1 - %s WHERE user_id = ? AND movie_id = ?`, column, column)
	if _, err := tx.ExecContext(ctx, update, userID, movieID); err != nil {
		return false, fmt.Errorf("failed to toggle %s: %w", column, err)
	}

	var state bool
	read := fmt.Sprintf(
		`SELECT %s FROM user_movie_stats WHERE user_id = ? AND movie_id = ?`, column)
	if err := tx.GetContext(ctx, &state, read, userID, movieID); err != nil {
		return false, fmt.Errorf("failed to read %s: %w", column, err)
	}

	return state, nil
}

func (r *statsRepository) SetRating(ctx context.Context, tx *sqlx.Tx, userID string, movieID int64, rating float64) error {
	query := `UPDATE user_movie_stats SET personal_rating = ? WHERE user_id = ? AND movie_id = ?`
	if _, err := tx.ExecContext(ctx, query, rating, userID, movieID); err != nil {
		return fmt.Errorf("failed to set rating: %w", err)
	}
	return nil
}

func (r *statsRepository) WatchedMovies(ctx context.Context, userID string) ([]model.Movie, error) {
	return r.moviesWhere(ctx, userID, "s.is_watched = 1")
}

func (r *statsRepository) FavoriteMovies(ctx context.Context, userID string) ([]model.Movie, error) {
	return r.moviesWhere(ctx, userID, "s.is_favorite = 1")
}

func (r *statsRepository) WatchlistMovies(ctx context.Context, userID string) ([]model.Movie, error) {
	return r.moviesWhere(ctx, userID, "s.in_watchlist = 1")
}

func (r *statsRepository) moviesWhere(ctx context.Context, userID, condition string) ([]model.Movie, error) {
	query := fmt.Sprintf(`
		SELECT m.id, m.title, m.media_type, m.year, m.runtime, m.overview,
		       m.poster_url, m.backdrop_url, m.genres, m.rating,
		       m.season_count, m.episode_count
		FROM user_movie_stats s
		INNER JOIN movies m ON m.id = s.movie_id
		WHERE s.user_id = ? AND %s
		ORDER BY m.title
	`, condition)

	var movies []model.Movie
	err := r.db.SelectContext(ctx, &movies, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies by stats: %w", err)
	}
	return movies, nil
}
