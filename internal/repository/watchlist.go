package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/model"
)

// watchlistRepository implements WatchlistRepository using sqlx
type watchlistRepository struct {
	db *sqlx.DB
}

func NewWatchlistRepository(db *sqlx.DB) WatchlistRepository {
	return &watchlistRepository{db: db}
}

func (r *watchlistRepository) CreateCategory(ctx context.Context, c *model.WatchlistCategory) error {
	c.CreatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO watchlist_categories (user_id, name, created_at) VALUES (?, ?, ?)`,
		c.UserID, c.Name, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert watchlist category: %w", err)
	}

	c.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get category id: %w", err)
	}

	return nil
}

func (r *watchlistRepository) GetCategory(ctx context.Context, id int64) (*model.WatchlistCategory, error) {
	var c model.WatchlistCategory
	err := r.db.GetContext(ctx, &c,
		`SELECT id, user_id, name, created_at FROM watchlist_categories WHERE id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get watchlist category: %w", err)
	}
	return &c, nil
}

func (r *watchlistRepository) RenameCategory(ctx context.Context, id int64, name string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE watchlist_categories SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("failed to rename watchlist category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrCategoryNotFound
	}

	return nil
}

// DeleteCategory removes the folder; its items cascade away.
func (r *watchlistRepository) DeleteCategory(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM watchlist_categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete watchlist category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrCategoryNotFound
	}

	return nil
}

func (r *watchlistRepository) ListCategories(ctx context.Context, userID string) ([]model.WatchlistCategory, error) {
	var categories []model.WatchlistCategory
	err := r.db.SelectContext(ctx, &categories,
		`SELECT id, user_id, name, created_at FROM watchlist_categories WHERE user_id = ? ORDER BY created_at`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist categories: %w", err)
	}
	return categories, nil
}

func (r *watchlistRepository) AddItem(ctx context.Context, categoryID, movieID int64, at time.Time) error {
	query := `
		INSERT OR REPLACE INTO watchlist_items (category_id, movie_id, added_at)
		VALUES (?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query, categoryID, movieID, at); err != nil {
		return fmt.Errorf("failed to add watchlist item: %w", err)
	}
	return nil
}

func (r *watchlistRepository) RemoveItem(ctx context.Context, categoryID, movieID int64) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM watchlist_items WHERE category_id = ? AND movie_id = ?`, categoryID, movieID)
	if err != nil {
		return false, fmt.Errorf("failed to remove watchlist item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *watchlistRepository) ListItems(ctx context.Context, categoryID int64) ([]model.WatchlistEntry, error) {
	query := `
		SELECT m.id, m.title, m.media_type, m.year, m.runtime, m.overview,
		       m.poster_url, m.backdrop_url, m.genres, m.rating,
		       m.season_count, m.episode_count,
		       wi.added_at
		FROM watchlist_items wi
		INNER JOIN movies m ON m.id = wi.movie_id
		WHERE wi.category_id = ?
		ORDER BY wi.added_at DESC
	`
	var entries []model.WatchlistEntry
	err := r.db.SelectContext(ctx, &entries, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist items: %w", err)
	}
	return entries, nil
}
