package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/model"
)

// settingsRepository implements SettingsRepository using sqlx
type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Ensure inserts the default-valued settings row if absent. Defaults live in
// the schema column definitions.
func (r *settingsRepository) Ensure(ctx context.Context, tx *sqlx.Tx, userID string) error {
	query := `
		INSERT INTO user_settings (user_id)
		VALUES (?)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to ensure settings row: %w", err)
	}
	return nil
}

func (r *settingsRepository) Get(ctx context.Context, userID string) (*model.UserSettings, error) {
	query := `
		SELECT user_id, notify_news, notify_comments, notify_trailers, notify_friends,
		       private_profile, show_watch_activity
		FROM user_settings
		WHERE user_id = ?
	`
	var s model.UserSettings
	err := r.db.GetContext(ctx, &s, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &s, nil
}

func (r *settingsRepository) Update(ctx context.Context, tx *sqlx.Tx, s *model.UserSettings) error {
	query := `
		UPDATE user_settings SET
			notify_news = ?, notify_comments = ?, notify_trailers = ?, notify_friends = ?,
			private_profile = ?, show_watch_activity = ?
		WHERE user_id = ?
	`
	_, err := tx.ExecContext(ctx, query,
		s.NotifyNews, s.NotifyComments, s.NotifyTrailers, s.NotifyFriends,
		s.PrivateProfile, s.ShowWatchActivity, s.UserID)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}
