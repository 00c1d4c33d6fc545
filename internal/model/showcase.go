package model

import "errors"

// ShowcaseSlots is the number of "favorite films" slots on a profile.
const ShowcaseSlots = 3

// ShowcaseMovie is one of the three user-chosen favorite films on a profile,
// addressed by slot position 0..2. Distinct from likes and favorites.
type ShowcaseMovie struct {
	UserID       string `db:"user_id" json:"user_id"`
	SlotPosition int    `db:"slot_position" json:"slot_position"`
	MovieID      int64  `db:"movie_id" json:"movie_id"`
}

// ShowcaseEntry joins a showcase slot with its movie.
type ShowcaseEntry struct {
	Movie
	SlotPosition int `db:"slot_position" json:"slot_position"`
}

var ErrInvalidSlot = errors.New("slot position must be 0, 1 or 2")
