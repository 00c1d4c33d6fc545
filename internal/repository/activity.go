package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/model"
)

// activityRepository implements ActivityRepository using sqlx
type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Insert(ctx context.Context, a *model.UserActivity) error {
	a.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO user_activity (user_id, action_type, target_type, target_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		a.UserID, a.ActionType, a.TargetType, a.TargetID, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}

	a.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get activity id: %w", err)
	}

	return nil
}

// WatchHistory derives the most recently viewed movies from the log,
// collapsing repeat views to the latest one.
func (r *activityRepository) WatchHistory(ctx context.Context, userID string, limit int) ([]model.Movie, error) {
	query := `
		SELECT m.id, m.title, m.media_type, m.year, m.runtime, m.overview,
		       m.poster_url, m.backdrop_url, m.genres, m.rating,
		       m.season_count, m.episode_count
		FROM user_activity a
		INNER JOIN movies m ON m.id = a.target_id
		WHERE a.user_id = ? AND a.action_type = 'view' AND a.target_type = 'movie'
		GROUP BY m.id
		ORDER BY MAX(a.created_at) DESC
		LIMIT ?
	`
	var movies []model.Movie
	err := r.db.SelectContext(ctx, &movies, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get watch history: %w", err)
	}
	return movies, nil
}

func (r *activityRepository) ViewCount(ctx context.Context, targetType string, targetID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM user_activity WHERE action_type = 'view' AND target_type = ? AND target_id = ?`,
		targetType, targetID)
	if err != nil {
		return 0, fmt.Errorf("failed to count views: %w", err)
	}
	return count, nil
}

// DeleteOlderThan is the retention sweep over the append-only log.
func (r *activityRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM user_activity WHERE created_at < ?`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old activity: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}
