package model

import (
	"errors"
	"time"
)

// News is an editorial item, seeded as read-mostly reference data.
type News struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Body      string    `db:"body" json:"body"`
	ImageURL  string    `db:"image_url" json:"image_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Shot is a user-posted still. The movie reference is optional and is nulled
// (not removed) when the movie is deleted.
type Shot struct {
	ID        int64     `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	MovieID   *int64    `db:"movie_id" json:"movie_id"`
	ImageURL  string    `db:"image_url" json:"image_url"`
	Caption   string    `db:"caption" json:"caption"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

var (
	ErrNewsNotFound   = errors.New("news not found")
	ErrShotNotFound   = errors.New("shot not found")
	ErrShotImageEmpty = errors.New("shot image url must not be empty")
)
