package model

import (
	"errors"
	"time"
)

// WatchlistCategory is a user-defined named folder of movies.
type WatchlistCategory struct {
	ID        int64     `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// WatchlistItem joins a category and a movie.
type WatchlistItem struct {
	CategoryID int64     `db:"category_id" json:"category_id"`
	MovieID    int64     `db:"movie_id" json:"movie_id"`
	AddedAt    time.Time `db:"added_at" json:"added_at"`
}

// WatchlistEntry is a movie inside a category, joined with its added time.
type WatchlistEntry struct {
	Movie
	AddedAt time.Time `db:"added_at" json:"added_at"`
}

var (
	ErrCategoryNotFound  = errors.New("watchlist category not found")
	ErrCategoryNameEmpty = errors.New("category name is required")
	ErrNotCategoryOwner  = errors.New("not the category owner")
)
