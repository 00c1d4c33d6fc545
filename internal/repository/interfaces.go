package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/model"
)

// Write methods that participate in a composite operation take a *sqlx.Tx
// opened by the service layer, so the whole operation commits or rolls back
// as one unit. Point reads and standalone writes go through the pool.

type UserRepository interface {
	// Create inserts a new user. Unique violations surface as
	// model.ErrUsernameExists / model.ErrEmailExists, never as a silent
	// overwrite.
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id string, upd *model.ProfileUpdate) error
	Search(ctx context.Context, prefix string, limit int) ([]model.UserSummary, error)
}

type MovieRepository interface {
	Create(ctx context.Context, m *model.Movie) error
	GetByID(ctx context.Context, id int64) (*model.Movie, error)
	List(ctx context.Context, filter model.MovieFilter) ([]model.Movie, error)
	Update(ctx context.Context, m *model.Movie) error
	// Delete removes the movie; album memberships, watchlist items and
	// reviews cascade away, shots have their movie reference nulled.
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type AlbumRepository interface {
	Create(ctx context.Context, a *model.Album) error
	GetByID(ctx context.Context, id int64) (*model.Album, error)
	Update(ctx context.Context, a *model.Album) error
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID string) ([]model.Album, error)
	AddMovie(ctx context.Context, tx *sqlx.Tx, albumID, movieID int64, position int, addedAt time.Time) error
	RemoveMovie(ctx context.Context, tx *sqlx.Tx, albumID, movieID int64) (bool, error)
	// RefreshMovieCount recomputes the cached movie_count from the
	// membership rows and persists it, returning the new count.
	RefreshMovieCount(ctx context.Context, tx *sqlx.Tx, albumID int64) (int, error)
	GetMovies(ctx context.Context, albumID int64) ([]model.AlbumEntry, error)
	AlbumsContainingMovie(ctx context.Context, movieID int64) ([]model.Album, error)
}

type SavedAlbumRepository interface {
	Insert(ctx context.Context, tx *sqlx.Tx, userID string, albumID int64, at time.Time) (bool, error)
	Delete(ctx context.Context, tx *sqlx.Tx, userID string, albumID int64) (bool, error)
	Exists(ctx context.Context, userID string, albumID int64) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]model.Album, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, r *model.Review) error
	GetByID(ctx context.Context, id int64) (*model.Review, error)
	Update(ctx context.Context, r *model.Review) error
	Delete(ctx context.Context, id int64) error
	HasUserReviewed(ctx context.Context, userID string, movieID int64) (bool, error)
	ListByMovie(ctx context.Context, movieID int64) ([]model.Review, error)
	ListByUser(ctx context.Context, userID string) ([]model.Review, error)
	// RecentByEngagementWithMovies orders by likes+comments descending.
	// Ties are left in store-default order; no secondary sort key.
	RecentByEngagementWithMovies(ctx context.Context, limit int) ([]model.ReviewWithMovie, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) error
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	Delete(ctx context.Context, id int64) error
	ListForTarget(ctx context.Context, targetType string, targetID int64) ([]model.Comment, error)
	CountForTarget(ctx context.Context, targetType string, targetID int64) (int, error)
}

type LikeRepository interface {
	Insert(ctx context.Context, tx *sqlx.Tx, userID, targetType string, targetID int64, at time.Time) (bool, error)
	Delete(ctx context.Context, tx *sqlx.Tx, userID, targetType string, targetID int64) (bool, error)
	Exists(ctx context.Context, userID, targetType string, targetID int64) (bool, error)
	CountForTarget(ctx context.Context, targetType string, targetID int64) (int, error)
}

type FollowRepository interface {
	Insert(ctx context.Context, tx *sqlx.Tx, followerID, followingID string, at time.Time) (bool, error)
	Delete(ctx context.Context, tx *sqlx.Tx, followerID, followingID string) (bool, error)
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
	Followers(ctx context.Context, userID string) ([]model.UserSummary, error)
	Following(ctx context.Context, userID string) ([]model.UserSummary, error)
	CountFollowers(ctx context.Context, userID string) (int, error)
	CountFollowing(ctx context.Context, userID string) (int, error)
}

type FriendshipRepository interface {
	// Create inserts a pending row with the requester as user_id1. Returns
	// false without touching the row when a friendship already exists in
	// either orientation.
	Create(ctx context.Context, f *model.Friendship) (bool, error)
	// Get probes both orderings of the unordered pair.
	Get(ctx context.Context, a, b string) (*model.Friendship, error)
	// UpdateStatusExact transitions the row only when the exact
	// (requester, receiver) orientation and the expected status match.
	UpdateStatusExact(ctx context.Context, userID1, userID2 string, from, to model.FriendshipStatus, at time.Time) (bool, error)
	// DeleteAny removes the pair regardless of orientation and status.
	DeleteAny(ctx context.Context, a, b string) (bool, error)
	ListFriends(ctx context.Context, userID string) ([]model.UserSummary, error)
	ListIncomingPending(ctx context.Context, userID string) ([]model.UserSummary, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	ListForUser(ctx context.Context, userID string, limit int) ([]model.Notification, error)
	MarkRead(ctx context.Context, userID string, ids []int64) error
	MarkAllRead(ctx context.Context, userID string) error
	UnreadCount(ctx context.Context, userID string) (int, error)
}

type ActivityRepository interface {
	Insert(ctx context.Context, a *model.UserActivity) error
	// WatchHistory derives the most recently viewed movies from the log.
	WatchHistory(ctx context.Context, userID string, limit int) ([]model.Movie, error)
	ViewCount(ctx context.Context, targetType string, targetID int64) (int, error)
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}

type StatsRepository interface {
	// Ensure inserts the default-valued aggregate row if absent. Idempotent;
	// two racing callers inside their own transactions cannot duplicate it.
	Ensure(ctx context.Context, tx *sqlx.Tx, userID string, movieID int64) error
	Get(ctx context.Context, userID string, movieID int64) (*model.UserMovieStats, error)
	MarkWatched(ctx context.Context, tx *sqlx.Tx, userID string, movieID int64, at time.Time) error
	ToggleFavorite(ctx context.Context, tx *sqlx.Tx, userID string, movieID int64) (bool, error)
	ToggleWatchlist(ctx context.Context, tx *sqlx.Tx, userID string, movieID int64) (bool, error)
	SetRating(ctx context.Context, tx *sqlx.Tx, userID string, movieID int64, rating float64) error
	WatchedMovies(ctx context.Context, userID string) ([]model.Movie, error)
	FavoriteMovies(ctx context.Context, userID string) ([]model.Movie, error)
	WatchlistMovies(ctx context.Context, userID string) ([]model.Movie, error)
}

type WatchlistRepository interface {
	CreateCategory(ctx context.Context, c *model.WatchlistCategory) error
	GetCategory(ctx context.Context, id int64) (*model.WatchlistCategory, error)
	RenameCategory(ctx context.Context, id int64, name string) error
	DeleteCategory(ctx context.Context, id int64) error
	ListCategories(ctx context.Context, userID string) ([]model.WatchlistCategory, error)
	AddItem(ctx context.Context, categoryID, movieID int64, at time.Time) error
	RemoveItem(ctx context.Context, categoryID, movieID int64) (bool, error)
	ListItems(ctx context.Context, categoryID int64) ([]model.WatchlistEntry, error)
}

type ShowcaseRepository interface {
	SetSlot(ctx context.Context, userID string, slot int, movieID int64) error
	ClearSlot(ctx context.Context, userID string, slot int) (bool, error)
	List(ctx context.Context, userID string) ([]model.ShowcaseEntry, error)
}

type SettingsRepository interface {
	Ensure(ctx context.Context, tx *sqlx.Tx, userID string) error
	Get(ctx context.Context, userID string) (*model.UserSettings, error)
	Update(ctx context.Context, tx *sqlx.Tx, s *model.UserSettings) error
}

type NewsRepository interface {
	Create(ctx context.Context, n *model.News) error
	GetByID(ctx context.Context, id int64) (*model.News, error)
	ListRecent(ctx context.Context, limit int) ([]model.News, error)
	Count(ctx context.Context) (int, error)
}

type ShotRepository interface {
	Create(ctx context.Context, s *model.Shot) error
	GetByID(ctx context.Context, id int64) (*model.Shot, error)
	ListByMovie(ctx context.Context, movieID int64) ([]model.Shot, error)
	ListRecent(ctx context.Context, limit int) ([]model.Shot, error)
	Count(ctx context.Context) (int, error)
}

// StateRepository is a small key/value store backing the session provider
// and the "already seeded" flag.
type StateRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
