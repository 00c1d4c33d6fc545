package model

import "time"

// UserMovieStats is the per-(user, movie) aggregate, created lazily on first
// interaction. Favorite and watchlist are boolean columns rather than
// membership rows because they coexist with the numeric watch state and
// personal rating on the same aggregate.
type UserMovieStats struct {
	UserID         string     `db:"user_id" json:"user_id"`
	MovieID        int64      `db:"movie_id" json:"movie_id"`
	IsWatched      bool       `db:"is_watched" json:"is_watched"`
	TimesWatched   int        `db:"times_watched" json:"times_watched"`
	LastWatchedAt  *time.Time `db:"last_watched_at" json:"last_watched_at"`
	IsFavorite     bool       `db:"is_favorite" json:"is_favorite"`
	InWatchlist    bool       `db:"in_watchlist" json:"in_watchlist"`
	PersonalRating *float64   `db:"personal_rating" json:"personal_rating"`
}
