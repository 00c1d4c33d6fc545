package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/model"
)

// friendshipRepository implements FriendshipRepository using sqlx
type friendshipRepository struct {
	db *sqlx.DB
}

func NewFriendshipRepository(db *sqlx.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

// Create inserts a pending row with the requester as user_id1. The guard
// subquery keeps the insert from creating a second row when the pair already
// exists in the reversed orientation; the primary key covers the same
// orientation.
func (r *friendshipRepository) Create(ctx context.Context, f *model.Friendship) (bool, error) {
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now

	query := `
		INSERT INTO friendships (user_id1, user_id2, status, created_at, updated_at)
		SELECT ?, ?, ?, ?, ?
		WHERE NOT EXISTS (
			SELECT 1 FROM friendships
			WHERE (user_id1 = ? AND user_id2 = ?) OR (user_id1 = ? AND user_id2 = ?)
		)
	`
	result, err := r.db.ExecContext(ctx, query,
		f.UserID1, f.UserID2, f.Status, f.CreatedAt, f.UpdatedAt,
		f.UserID1, f.UserID2, f.UserID2, f.UserID1)
	if err != nil {
		return false, fmt.Errorf("failed to insert friendship: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

// Get probes both orderings; the status of a pair reads the same from either
// side even though mutations are orientation-sensitive.
func (r *friendshipRepository) Get(ctx context.Context, a, b string) (*model.Friendship, error) {
	query := `
		SELECT user_id1, user_id2, status, created_at, updated_at
		FROM friendships
		WHERE (user_id1 = ? AND user_id2 = ?) OR (user_id1 = ? AND user_id2 = ?)
	`
	var f model.Friendship
	err := r.db.GetContext(ctx, &f, query, a, b, b, a)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrFriendshipNotFound
		}
		return nil, fmt.Errorf("failed to get friendship: %w", err)
	}
	return &f, nil
}

func (r *friendshipRepository) UpdateStatusExact(ctx context.Context, userID1, userID2 string, from, to model.FriendshipStatus, at time.Time) (bool, error) {
	query := `
		UPDATE friendships SET status = ?, updated_at = ?
		WHERE user_id1 = ? AND user_id2 = ? AND status = ?
	`
	result, err := r.db.ExecContext(ctx, query, to, at, userID1, userID2, from)
	if err != nil {
		return false, fmt.Errorf("failed to update friendship status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *friendshipRepository) DeleteAny(ctx context.Context, a, b string) (bool, error) {
	query := `
		DELETE FROM friendships
		WHERE (user_id1 = ? AND user_id2 = ?) OR (user_id1 = ? AND user_id2 = ?)
	`
	result, err := r.db.ExecContext(ctx, query, a, b, b, a)
	if err != nil {
		return false, fmt.Errorf("failed to delete friendship: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *friendshipRepository) ListFriends(ctx context.Context, userID string) ([]model.UserSummary, error) {
	query := `
		SELECT u.id, u.username, u.display_name, u.avatar_url
		FROM friendships f
		INNER JOIN users u
			ON u.id = CASE WHEN f.user_id1 = ? THEN f.user_id2 ELSE f.user_id1 END
		WHERE (f.user_id1 = ? OR f.user_id2 = ?) AND f.status = 'accepted'
		ORDER BY f.updated_at DESC
	`
	var users []model.UserSummary
	err := r.db.SelectContext(ctx, &users, query, userID, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	return users, nil
}

func (r *friendshipRepository) ListIncomingPending(ctx context.Context, userID string) ([]model.UserSummary, error) {
	query := `
		SELECT u.id, u.username, u.display_name, u.avatar_url
		FROM friendships f
		INNER JOIN users u ON u.id = f.user_id1
		WHERE f.user_id2 = ? AND f.status = 'pending'
		ORDER BY f.created_at DESC
	`
	var users []model.UserSummary
	err := r.db.SelectContext(ctx, &users, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incoming requests: %w", err)
	}
	return users, nil
}
