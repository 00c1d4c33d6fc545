package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/model"
)

// showcaseRepository implements ShowcaseRepository using sqlx
type showcaseRepository struct {
	db *sqlx.DB
}

func NewShowcaseRepository(db *sqlx.DB) ShowcaseRepository {
	return &showcaseRepository{db: db}
}

// SetSlot upserts the slot; choosing a new film for an occupied slot replaces
// the previous pick.
func (r *showcaseRepository) SetSlot(ctx context.Context, userID string, slot int, movieID int64) error {
	query := `
		INSERT OR REPLACE INTO showcase_movies (user_id, slot_position, movie_id)
		VALUES (?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query, userID, slot, movieID); err != nil {
		return fmt.Errorf("failed to set showcase slot: %w", err)
	}
	return nil
}

func (r *showcaseRepository) ClearSlot(ctx context.Context, userID string, slot int) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM showcase_movies WHERE user_id = ? AND slot_position = ?`, userID, slot)
	if err != nil {
		return false, fmt.Errorf("failed to clear showcase slot: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *showcaseRepository) List(ctx context.Context, userID string) ([]model.ShowcaseEntry, error) {
	query := `
		SELECT m.id, m.title, m.media_type, m.year, m.runtime, m.overview,
		       m.poster_url, m.backdrop_url, m.genres, m.rating,
		       m.season_count, m.episode_count,
		       sm.slot_position
		FROM showcase_movies sm
		INNER JOIN movies m ON m.id = sm.movie_id
		WHERE sm.user_id = ?
		ORDER BY sm.slot_position
	`
	var entries []model.ShowcaseEntry
	err := r.db.SelectContext(ctx, &entries, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list showcase: %w", err)
	}
	return entries, nil
}
