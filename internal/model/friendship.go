package model

import (
	"errors"
	"time"
)

// FriendshipStatus defines the state of a friendship row.
type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
	FriendshipRejected FriendshipStatus = "rejected"
)

// Friendship is an undirected pairing stored with the requester's role
// preserved: UserID1 is always the sender of the request. Status transitions
// match on the exact (UserID1, UserID2) orientation; status reads probe both
// orderings.
//
// There is no transition from rejected back to pending; re-requesting after a
// rejection is unsupported.
type Friendship struct {
	UserID1   string           `db:"user_id1" json:"user_id1"`
	UserID2   string           `db:"user_id2" json:"user_id2"`
	Status    FriendshipStatus `db:"status" json:"status"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt time.Time        `db:"updated_at" json:"updated_at"`
}

var (
	// ErrFriendRequestNotFound is returned by accept/reject when no pending
	// row matches the exact requester/receiver orientation.
	ErrFriendRequestNotFound = errors.New("friend request not found")

	ErrFriendshipNotFound = errors.New("friendship not found")
)
