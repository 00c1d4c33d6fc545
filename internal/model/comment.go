package model

import (
	"errors"
	"time"
)

// Target types likes and comments can attach to.
const (
	TargetReview = "review"
	TargetAlbum  = "album"
	TargetNews   = "news"
	TargetShot   = "shot"
)

// Comment is threaded text on any (targetType, targetId) pair. A nil
// ParentCommentID marks a root comment; replies must point at a parent on the
// same target.
type Comment struct {
	ID              int64     `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	TargetType      string    `db:"target_type" json:"target_type"`
	TargetID        int64     `db:"target_id" json:"target_id"`
	ParentCommentID *int64    `db:"parent_comment_id" json:"parent_comment_id"`
	Body            string    `db:"body" json:"body"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

var (
	ErrCommentNotFound   = errors.New("comment not found")
	ErrCommentBodyEmpty  = errors.New("comment body is required")
	ErrParentMismatch    = errors.New("parent comment belongs to a different target")
	ErrNotCommentAuthor  = errors.New("not the comment author")
	ErrInvalidTargetType = errors.New("invalid target type")
)
