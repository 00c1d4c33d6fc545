package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/model"
)

// shotRepository implements ShotRepository using sqlx
type shotRepository struct {
	db *sqlx.DB
}

func NewShotRepository(db *sqlx.DB) ShotRepository {
	return &shotRepository{db: db}
}

const shotColumns = `id, user_id, movie_id, image_url, caption, created_at`

func (r *shotRepository) Create(ctx context.Context, s *model.Shot) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO shots (user_id, movie_id, image_url, caption, created_at) VALUES (?, ?, ?, ?, ?)`,
		s.UserID, s.MovieID, s.ImageURL, s.Caption, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert shot: %w", err)
	}

	s.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get shot id: %w", err)
	}

	return nil
}

func (r *shotRepository) GetByID(ctx context.Context, id int64) (*model.Shot, error) {
	var s model.Shot
	err := r.db.GetContext(ctx, &s, `SELECT `+shotColumns+` FROM shots WHERE id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrShotNotFound
		}
		return nil, fmt.Errorf("failed to get shot by id: %w", err)
	}
	return &s, nil
}

func (r *shotRepository) ListByMovie(ctx context.Context, movieID int64) ([]model.Shot, error) {
	var shots []model.Shot
	err := r.db.SelectContext(ctx, &shots,
		`SELECT `+shotColumns+` FROM shots WHERE movie_id = ? ORDER BY created_at DESC`, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shots by movie: %w", err)
	}
	return shots, nil
}

func (r *shotRepository) ListRecent(ctx context.Context, limit int) ([]model.Shot, error) {
	var shots []model.Shot
	err := r.db.SelectContext(ctx, &shots,
		`SELECT `+shotColumns+` FROM shots ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent shots: %w", err)
	}
	return shots, nil
}

func (r *shotRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM shots`)
	if err != nil {
		return 0, fmt.Errorf("failed to count shots: %w", err)
	}
	return count, nil
}
