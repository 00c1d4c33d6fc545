package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// likeRepository implements LikeRepository using sqlx
type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Insert(ctx context.Context, tx *sqlx.Tx, userID, targetType string, targetID int64, at time.Time) (bool, error) {
	query := `
		INSERT INTO likes (user_id, target_type, target_id, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, target_type, target_id) DO NOTHING
	`
	result, err := tx.ExecContext(ctx, query, userID, targetType, targetID, at)
	if err != nil {
		return false, fmt.Errorf("failed to insert like: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *likeRepository) Delete(ctx context.Context, tx *sqlx.Tx, userID, targetType string, targetID int64) (bool, error) {
	result, err := tx.ExecContext(ctx,
		`DELETE FROM likes WHERE user_id = ? AND target_type = ? AND target_id = ?`,
		userID, targetType, targetID)
	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *likeRepository) Exists(ctx context.Context, userID, targetType string, targetID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = ? AND target_type = ? AND target_id = ?)`,
		userID, targetType, targetID)
	if err != nil {
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}
	return exists, nil
}

func (r *likeRepository) CountForTarget(ctx context.Context, targetType string, targetID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM likes WHERE target_type = ? AND target_id = ?`,
		targetType, targetID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
