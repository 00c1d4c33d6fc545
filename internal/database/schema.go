package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Migrate creates the full schema. Every statement is idempotent, so the
// migration is safe to run on every startup.
//
// Foreign keys are declared only where a delete must cascade (album and
// watchlist membership, reviews, shots). Social rows such as likes, comments
// and activity intentionally carry no foreign key to users so the guest
// identity can author them without a matching users row.
func Migrate(db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			username      TEXT NOT NULL UNIQUE,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			salt          TEXT NOT NULL,
			display_name  TEXT,
			avatar_url    TEXT,
			bio           TEXT,
			cover_url     TEXT,
			created_at    DATETIME NOT NULL,
			updated_at    DATETIME NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS movies (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			title         TEXT NOT NULL,
			media_type    TEXT NOT NULL DEFAULT 'movie',
			year          INTEGER NOT NULL DEFAULT 0,
			runtime       INTEGER NOT NULL DEFAULT 0,
			overview      TEXT NOT NULL DEFAULT '',
			poster_url    TEXT NOT NULL DEFAULT '',
			backdrop_url  TEXT NOT NULL DEFAULT '',
			genres        TEXT NOT NULL DEFAULT '',
			rating        REAL NOT NULL DEFAULT 0,
			season_count  INTEGER NOT NULL DEFAULT 0,
			episode_count INTEGER NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS albums (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id     TEXT NOT NULL,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			privacy     TEXT NOT NULL DEFAULT 'public' CHECK (privacy IN ('public', 'friends', 'private')),
			movie_count INTEGER NOT NULL DEFAULT 0,
			created_at  DATETIME NOT NULL,
			updated_at  DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_albums_user_id ON albums(user_id)`,

		`CREATE TABLE IF NOT EXISTS album_movies (
			album_id INTEGER NOT NULL REFERENCES albums(id) ON DELETE CASCADE,
			movie_id INTEGER NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
			position INTEGER NOT NULL DEFAULT 0,
			added_at DATETIME NOT NULL,
			PRIMARY KEY (album_id, movie_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_album_movies_movie_id ON album_movies(movie_id)`,

		`CREATE TABLE IF NOT EXISTS reviews (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id    TEXT NOT NULL,
			movie_id   INTEGER NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
			rating     REAL,
			title      TEXT,
			body       TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_movie_id ON reviews(movie_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_user_id ON reviews(user_id)`,

		`CREATE TABLE IF NOT EXISTS comments (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id           TEXT NOT NULL,
			target_type       TEXT NOT NULL,
			target_id         INTEGER NOT NULL,
			parent_comment_id INTEGER,
			body              TEXT NOT NULL,
			created_at        DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_target ON comments(target_type, target_id)`,

		`CREATE TABLE IF NOT EXISTS likes (
			user_id     TEXT NOT NULL,
			target_type TEXT NOT NULL,
			target_id   INTEGER NOT NULL,
			created_at  DATETIME NOT NULL,
			PRIMARY KEY (user_id, target_type, target_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_likes_target ON likes(target_type, target_id)`,

		`CREATE TABLE IF NOT EXISTS saved_albums (
			user_id    TEXT NOT NULL,
			album_id   INTEGER NOT NULL,
			created_at DATETIME NOT NULL,
			PRIMARY KEY (user_id, album_id)
		)`,

		`CREATE TABLE IF NOT EXISTS follows (
			follower_id  TEXT NOT NULL,
			following_id TEXT NOT NULL,
			created_at   DATETIME NOT NULL,
			PRIMARY KEY (follower_id, following_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_follows_following ON follows(following_id)`,

		`CREATE TABLE IF NOT EXISTS friendships (
			user_id1   TEXT NOT NULL,
			user_id2   TEXT NOT NULL,
			status     TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'accepted', 'rejected')),
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			PRIMARY KEY (user_id1, user_id2)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_friendships_user_id2 ON friendships(user_id2)`,

		`CREATE TABLE IF NOT EXISTS notifications (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id    TEXT NOT NULL,
			type       TEXT NOT NULL CHECK (type IN ('NEWS', 'COMMENT', 'TRAILER', 'FRIEND')),
			actor_id   TEXT,
			content_id INTEGER,
			message    TEXT NOT NULL DEFAULT '',
			is_read    INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_user_id ON notifications(user_id)`,

		`CREATE TABLE IF NOT EXISTS user_activity (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id     TEXT NOT NULL,
			action_type TEXT NOT NULL CHECK (action_type IN ('view', 'like', 'comment', 'share')),
			target_type TEXT NOT NULL,
			target_id   INTEGER NOT NULL,
			created_at  DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_user_activity_user_id ON user_activity(user_id)`,

		`CREATE TABLE IF NOT EXISTS user_movie_stats (
			user_id         TEXT NOT NULL,
			movie_id        INTEGER NOT NULL,
			is_watched      INTEGER NOT NULL DEFAULT 0,
			times_watched   INTEGER NOT NULL DEFAULT 0,
			last_watched_at DATETIME,
			is_favorite     INTEGER NOT NULL DEFAULT 0,
			in_watchlist    INTEGER NOT NULL DEFAULT 0,
			personal_rating REAL,
			PRIMARY KEY (user_id, movie_id)
		)`,

		`CREATE TABLE IF NOT EXISTS watchlist_categories (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id    TEXT NOT NULL,
			name       TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_watchlist_categories_user_id ON watchlist_categories(user_id)`,

		`CREATE TABLE IF NOT EXISTS watchlist_items (
			category_id INTEGER NOT NULL REFERENCES watchlist_categories(id) ON DELETE CASCADE,
			movie_id    INTEGER NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
			added_at    DATETIME NOT NULL,
			PRIMARY KEY (category_id, movie_id)
		)`,

		`CREATE TABLE IF NOT EXISTS showcase_movies (
			user_id       TEXT NOT NULL,
			slot_position INTEGER NOT NULL CHECK (slot_position BETWEEN 0 AND 2),
			movie_id      INTEGER NOT NULL,
			PRIMARY KEY (user_id, slot_position)
		)`,

		`CREATE TABLE IF NOT EXISTS user_settings (
			user_id             TEXT PRIMARY KEY,
			notify_news         INTEGER NOT NULL DEFAULT 1,
			notify_comments     INTEGER NOT NULL DEFAULT 1,
			notify_trailers     INTEGER NOT NULL DEFAULT 1,
			notify_friends      INTEGER NOT NULL DEFAULT 1,
			private_profile     INTEGER NOT NULL DEFAULT 0,
			show_watch_activity INTEGER NOT NULL DEFAULT 1
		)`,

		`CREATE TABLE IF NOT EXISTS news (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			title      TEXT NOT NULL,
			body       TEXT NOT NULL DEFAULT '',
			image_url  TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS shots (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id    TEXT NOT NULL,
			movie_id   INTEGER REFERENCES movies(id) ON DELETE SET NULL,
			image_url  TEXT NOT NULL,
			caption    TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS app_state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}

	return nil
}
