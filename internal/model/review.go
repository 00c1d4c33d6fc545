package model

import (
	"errors"
	"time"
)

// Review is one user's opinion on one movie. Rating and Title are optional;
// Body is required. Nothing enforces one review per user per movie; callers
// that want single-review semantics check HasUserReviewed first and route to
// an update.
type Review struct {
	ID        int64     `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	MovieID   int64     `db:"movie_id" json:"movie_id"`
	Rating    *float64  `db:"rating" json:"rating"`
	Title     *string   `db:"title" json:"title"`
	Body      string    `db:"body" json:"body"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ReviewWithMovie joins a review with its movie plus the engagement score
// (likes + comments) the feed orders by.
type ReviewWithMovie struct {
	Review
	MovieTitle     string `db:"movie_title" json:"movie_title"`
	MoviePosterURL string `db:"movie_poster_url" json:"movie_poster_url"`
	MovieYear      int    `db:"movie_year" json:"movie_year"`
	Engagement     int    `db:"engagement" json:"engagement"`
}

var (
	ErrReviewNotFound   = errors.New("review not found")
	ErrReviewBodyEmpty  = errors.New("review body is required")
	ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")
	ErrNotReviewAuthor  = errors.New("not the review author")
)
