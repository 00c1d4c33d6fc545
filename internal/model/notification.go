package model

import "time"

// Notification event types.
const (
	NotificationNews    = "NEWS"
	NotificationComment = "COMMENT"
	NotificationTrailer = "TRAILER"
	NotificationFriend  = "FRIEND"
)

// Notification is a delivery record for one recipient. ActorID and ContentID
// optionally reference the triggering user and content row.
type Notification struct {
	ID        int64     `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Type      string    `db:"type" json:"type"`
	ActorID   *string   `db:"actor_id" json:"actor_id"`
	ContentID *int64    `db:"content_id" json:"content_id"`
	Message   string    `db:"message" json:"message"`
	IsRead    bool      `db:"is_read" json:"is_read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
