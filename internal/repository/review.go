package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/model"
)

// reviewRepository implements ReviewRepository using sqlx
type reviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

const reviewColumns = `id, user_id, movie_id, rating, title, body, created_at, updated_at`

// Create always inserts a new row; one-review-per-user-per-movie is a caller
// policy, not a stored constraint.
func (r *reviewRepository) Create(ctx context.Context, rev *model.Review) error {
	now := time.Now().UTC()
	rev.CreatedAt = now
	rev.UpdatedAt = now

	query := `
		INSERT INTO reviews (user_id, movie_id, rating, title, body, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		rev.UserID, rev.MovieID, rev.Rating, rev.Title, rev.Body, rev.CreatedAt, rev.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}

	rev.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get review id: %w", err)
	}

	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	var rev model.Review
	err := r.db.GetContext(ctx, &rev, `SELECT `+reviewColumns+` FROM reviews WHERE id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review by id: %w", err)
	}
	return &rev, nil
}

func (r *reviewRepository) Update(ctx context.Context, rev *model.Review) error {
	query := `
		UPDATE reviews SET rating = ?, title = ?, body = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		rev.Rating, rev.Title, rev.Body, time.Now().UTC(), rev.ID)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

func (r *reviewRepository) HasUserReviewed(ctx context.Context, userID string, movieID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM reviews WHERE user_id = ? AND movie_id = ?)`,
		userID, movieID)
	if err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}
	return exists, nil
}

func (r *reviewRepository) ListByMovie(ctx context.Context, movieID int64) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.SelectContext(ctx, &reviews,
		`SELECT `+reviewColumns+` FROM reviews WHERE movie_id = ? ORDER BY created_at DESC`, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews by movie: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID string) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.SelectContext(ctx, &reviews,
		`SELECT `+reviewColumns+` FROM reviews WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews by user: %w", err)
	}
	return reviews, nil
}

// RecentByEngagementWithMovies ranks reviews by likes + comments, counted per
// row. Ties keep store-default order: there is deliberately no secondary sort
// key.
func (r *reviewRepository) RecentByEngagementWithMovies(ctx context.Context, limit int) ([]model.ReviewWithMovie, error) {
	query := `
		SELECT r.id, r.user_id, r.movie_id, r.rating, r.title, r.body, r.created_at, r.updated_at,
		       m.title AS movie_title, m.poster_url AS movie_poster_url, m.year AS movie_year,
		       (SELECT COUNT(*) FROM likes l WHERE l.target_type = 'review' AND l.target_id = r.id)
		     + (SELECT COUNT(*) FROM comments c WHERE c.target_type = 'review' AND c.target_id = r.id)
		       AS engagement
		FROM reviews r
		INNER JOIN movies m ON m.id = r.movie_id
		ORDER BY engagement DESC
		LIMIT ?
	`
	var reviews []model.ReviewWithMovie
	err := r.db.SelectContext(ctx, &reviews, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get engagement feed: %w", err)
	}
	return reviews, nil
}
