package model

import (
	"errors"
	"time"
)

const (
	PrivacyPublic  = "public"
	PrivacyFriends = "friends"
	PrivacyPrivate = "private"
)

// Album is a named, ordered collection of movies owned by one user.
// MovieCount caches count(album_movies where album_id = id) and is recomputed
// in the same transaction as every membership mutation.
type Album struct {
	ID          int64     `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Privacy     string    `db:"privacy" json:"privacy"`
	MovieCount  int       `db:"movie_count" json:"movie_count"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// AlbumMovie is the membership row; position gives the album its stable order.
type AlbumMovie struct {
	AlbumID  int64     `db:"album_id" json:"album_id"`
	MovieID  int64     `db:"movie_id" json:"movie_id"`
	Position int       `db:"position" json:"position"`
	AddedAt  time.Time `db:"added_at" json:"added_at"`
}

// AlbumEntry is a movie inside an album, joined with its membership columns.
type AlbumEntry struct {
	Movie
	Position int       `db:"position" json:"position"`
	AddedAt  time.Time `db:"added_at" json:"added_at"`
}

var (
	ErrAlbumNotFound  = errors.New("album not found")
	ErrAlbumNameEmpty = errors.New("album name is required")
	ErrInvalidPrivacy = errors.New("invalid privacy level")
	ErrNotAlbumOwner  = errors.New("not the album owner")
)
