package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/model"
)

// newsRepository implements NewsRepository using sqlx
type newsRepository struct {
	db *sqlx.DB
}

func NewNewsRepository(db *sqlx.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(ctx context.Context, n *model.News) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO news (title, body, image_url, created_at) VALUES (?, ?, ?, ?)`,
		n.Title, n.Body, n.ImageURL, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert news: %w", err)
	}

	n.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get news id: %w", err)
	}

	return nil
}

func (r *newsRepository) GetByID(ctx context.Context, id int64) (*model.News, error) {
	var n model.News
	err := r.db.GetContext(ctx, &n,
		`SELECT id, title, body, image_url, created_at FROM news WHERE id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrNewsNotFound
		}
		return nil, fmt.Errorf("failed to get news by id: %w", err)
	}
	return &n, nil
}

func (r *newsRepository) ListRecent(ctx context.Context, limit int) ([]model.News, error) {
	var items []model.News
	err := r.db.SelectContext(ctx, &items,
		`SELECT id, title, body, image_url, created_at FROM news ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	return items, nil
}

func (r *newsRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM news`)
	if err != nil {
		return 0, fmt.Errorf("failed to count news: %w", err)
	}
	return count, nil
}
