package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/model"
)

// savedAlbumRepository implements SavedAlbumRepository using sqlx
type savedAlbumRepository struct {
	db *sqlx.DB
}

func NewSavedAlbumRepository(db *sqlx.DB) SavedAlbumRepository {
	return &savedAlbumRepository{db: db}
}

func (r *savedAlbumRepository) Insert(ctx context.Context, tx *sqlx.Tx, userID string, albumID int64, at time.Time) (bool, error) {
	query := `
		INSERT INTO saved_albums (user_id, album_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, album_id) DO NOTHING
	`
	result, err := tx.ExecContext(ctx, query, userID, albumID, at)
	if err != nil {
		return false, fmt.Errorf("failed to insert saved album: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *savedAlbumRepository) Delete(ctx context.Context, tx *sqlx.Tx, userID string, albumID int64) (bool, error) {
	result, err := tx.ExecContext(ctx,
		`DELETE FROM saved_albums WHERE user_id = ? AND album_id = ?`, userID, albumID)
	if err != nil {
		return false, fmt.Errorf("failed to delete saved album: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *savedAlbumRepository) Exists(ctx context.Context, userID string, albumID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM saved_albums WHERE user_id = ? AND album_id = ?)`,
		userID, albumID)
	if err != nil {
		return false, fmt.Errorf("failed to check saved album existence: %w", err)
	}
	return exists, nil
}

func (r *savedAlbumRepository) ListByUser(ctx context.Context, userID string) ([]model.Album, error) {
	query := `
		SELECT a.id, a.user_id, a.name, a.description, a.privacy, a.movie_count, a.created_at, a.updated_at
		FROM saved_albums sa
		INNER JOIN albums a ON a.id = sa.album_id
		WHERE sa.user_id = ?
		ORDER BY sa.created_at DESC
	`
	var albums []model.Album
	err := r.db.SelectContext(ctx, &albums, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved albums: %w", err)
	}
	return albums, nil
}
