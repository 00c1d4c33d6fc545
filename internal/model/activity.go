package model

import "time"

// Action types for the activity log.
const (
	ActionView    = "view"
	ActionLike    = "like"
	ActionComment = "comment"
	ActionShare   = "share"
)

// UserActivity is an append-only log row. Watch history and view counts are
// derived from it; rows are only removed by the retention sweep.
type UserActivity struct {
	ID         int64     `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"user_id"`
	ActionType string    `db:"action_type" json:"action_type"`
	TargetType string    `db:"target_type" json:"target_type"`
	TargetID   int64     `db:"target_id" json:"target_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
