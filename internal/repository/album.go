package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/model"
)

// albumRepository implements AlbumRepository using sqlx
type albumRepository struct {
	db *sqlx.DB
}

func NewAlbumRepository(db *sqlx.DB) AlbumRepository {
	return &albumRepository{db: db}
}

const albumColumns = `id, user_id, name, description, privacy, movie_count, created_at, updated_at`

func (r *albumRepository) Create(ctx context.Context, a *model.Album) error {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	query := `
		INSERT INTO albums (user_id, name, description, privacy, movie_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, 0, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		a.UserID, a.Name, a.Description, a.Privacy, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert album: %w", err)
	}

	a.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get album id: %w", err)
	}

	return nil
}

func (r *albumRepository) GetByID(ctx context.Context, id int64) (*model.Album, error) {
	var a model.Album
	err := r.db.GetContext(ctx, &a, `SELECT `+albumColumns+` FROM albums WHERE id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrAlbumNotFound
		}
		return nil, fmt.Errorf("failed to get album by id: %w", err)
	}
	return &a, nil
}

func (r *albumRepository) Update(ctx context.Context, a *model.Album) error {
	query := `
		UPDATE albums SET name = ?, description = ?, privacy = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		a.Name, a.Description, a.Privacy, time.Now().UTC(), a.ID)
	if err != nil {
		return fmt.Errorf("failed to update album: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrAlbumNotFound
	}

	return nil
}

// Delete removes the album; membership rows cascade away with it.
func (r *albumRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM albums WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete album: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrAlbumNotFound
	}

	return nil
}

func (r *albumRepository) ListByUser(ctx context.Context, userID string) ([]model.Album, error) {
	var albums []model.Album
	err := r.db.SelectContext(ctx, &albums,
		`SELECT `+albumColumns+` FROM albums WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}
	return albums, nil
}

// AddMovie upserts the membership row (REPLACE semantics, so re-adding an
// existing movie just moves it to the new position).
func (r *albumRepository) AddMovie(ctx context.Context, tx *sqlx.Tx, albumID, movieID int64, position int, addedAt time.Time) error {
	query := `
		INSERT OR REPLACE INTO album_movies (album_id, movie_id, position, added_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := tx.ExecContext(ctx, query, albumID, movieID, position, addedAt)
	if err != nil {
		return fmt.Errorf("failed to add movie to album: %w", err)
	}
	return nil
}

func (r *albumRepository) RemoveMovie(ctx context.Context, tx *sqlx.Tx, albumID, movieID int64) (bool, error) {
	result, err := tx.ExecContext(ctx,
		`DELETE FROM album_movies WHERE album_id = ? AND movie_id = ?`, albumID, movieID)
	if err != nil {
		return false, fmt.Errorf("failed to remove movie from album: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *albumRepository) RefreshMovieCount(ctx context.Context, tx *sqlx.Tx, albumID int64) (int, error) {
	query := `
		UPDATE albums
		SET movie_count = (SELECT COUNT(*) FROM album_movies WHERE album_id = ?)
		WHERE id = ?
	`
	if _, err := tx.ExecContext(ctx, query, albumID, albumID); err != nil {
		return 0, fmt.Errorf("failed to refresh movie count: %w", err)
	}

	var count int
	if err := tx.GetContext(ctx, &count, `SELECT movie_count FROM albums WHERE id = ?`, albumID); err != nil {
		return 0, fmt.Errorf("failed to read movie count: %w", err)
	}

	return count, nil
}

func (r *albumRepository) GetMovies(ctx context.Context, albumID int64) ([]model.AlbumEntry, error) {
	query := `
		SELECT m.id, m.title, m.media_type, m.year, m.runtime, m.overview,
		       m.poster_url, m.backdrop_url, m.genres, m.rating,
		       m.season_count, m.episode_count,
		       am.position, am.added_at
		FROM album_movies am
		INNER JOIN movies m ON m.id = am.movie_id
		WHERE am.album_id = ?
		ORDER BY am.position
	`
	var entries []model.AlbumEntry
	err := r.db.SelectContext(ctx, &entries, query, albumID)
	if err != nil {
		return nil, fmt.Errorf("failed to get album movies: %w", err)
	}
	return entries, nil
}

func (r *albumRepository) AlbumsContainingMovie(ctx context.Context, movieID int64) ([]model.Album, error) {
	query := `
		SELECT a.id, a.user_id, a.name, a.description, a.privacy, a.movie_count, a.created_at, a.updated_at
		FROM album_movies am
		INNER JOIN albums a ON a.id = am.album_id
		WHERE am.movie_id = ?
		ORDER BY am.added_at DESC
	`
	var albums []model.Album
	err := r.db.SelectContext(ctx, &albums, query, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to get albums containing movie: %w", err)
	}
	return albums, nil
}
