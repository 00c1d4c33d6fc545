package model

import "time"

// Like is a set-membership row keyed by its full natural key; presence means
// "liked". This is the canonical idempotent-toggle shape used throughout.
type Like struct {
	UserID     string    `db:"user_id" json:"user_id"`
	TargetType string    `db:"target_type" json:"target_type"`
	TargetID   int64     `db:"target_id" json:"target_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Follow is a directed edge in the social graph.
type Follow struct {
	FollowerID  string    `db:"follower_id" json:"follower_id"`
	FollowingID string    `db:"following_id" json:"following_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// SavedAlbum bookmarks someone else's album, distinct from ownership.
type SavedAlbum struct {
	UserID    string    `db:"user_id" json:"user_id"`
	AlbumID   int64     `db:"album_id" json:"album_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
