package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/model"
)

// movieRepository implements MovieRepository using sqlx
type movieRepository struct {
	db *sqlx.DB
}

func NewMovieRepository(db *sqlx.DB) MovieRepository {
	return &movieRepository{db: db}
}

const movieColumns = `id, title, media_type, year, runtime, overview, poster_url, backdrop_url, genres, rating, season_count, episode_count`

func (r *movieRepository) Create(ctx context.Context, m *model.Movie) error {
	query := `
		INSERT INTO movies (title, media_type, year, runtime, overview, poster_url, backdrop_url, genres, rating, season_count, episode_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		m.Title,
		m.MediaType,
		m.Year,
		m.Runtime,
		m.Overview,
		m.PosterURL,
		m.BackdropURL,
		m.Genres,
		m.Rating,
		m.SeasonCount,
		m.EpisodeCount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert movie: %w", err)
	}

	m.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get movie id: %w", err)
	}

	return nil
}

func (r *movieRepository) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	var m model.Movie
	err := r.db.GetContext(ctx, &m, `SELECT `+movieColumns+` FROM movies WHERE id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie by id: %w", err)
	}
	return &m, nil
}

func (r *movieRepository) List(ctx context.Context, filter model.MovieFilter) ([]model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE 1=1`
	var args []interface{}

	if filter.MediaType != "" {
		query += ` AND media_type = ?`
		args = append(args, filter.MediaType)
	}
	if filter.Genre != "" {
		query += ` AND (',' || genres || ',') LIKE ?`
		args = append(args, "%,"+filter.Genre+",%")
	}
	if filter.Search != "" {
		query += ` AND title LIKE ?`
		args = append(args, "%"+filter.Search+"%")
	}

	query += ` ORDER BY rating DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += ` LIMIT ? OFFSET ?`
	args = append(args, limit, filter.Offset)

	var movies []model.Movie
	err := r.db.SelectContext(ctx, &movies, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

func (r *movieRepository) Update(ctx context.Context, m *model.Movie) error {
	query := `
		UPDATE movies SET
			title = ?, media_type = ?, year = ?, runtime = ?, overview = ?,
			poster_url = ?, backdrop_url = ?, genres = ?, rating = ?,
			season_count = ?, episode_count = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		m.Title, m.MediaType, m.Year, m.Runtime, m.Overview,
		m.PosterURL, m.BackdropURL, m.Genres, m.Rating,
		m.SeasonCount, m.EpisodeCount, m.ID)
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrMovieNotFound
	}

	return nil
}

// Delete removes the movie row. The schema cascades album memberships,
// watchlist items and reviews, and nulls the movie reference on shots.
func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrMovieNotFound
	}

	return nil
}

func (r *movieRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM movies`)
	if err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return count, nil
}
