package model

// UserSettings holds one row of notification/privacy toggles per user,
// created lazily on first access. Defaults: all notifications on, profile
// public, watch activity visible.
type UserSettings struct {
	UserID            string `db:"user_id" json:"user_id"`
	NotifyNews        bool   `db:"notify_news" json:"notify_news"`
	NotifyComments    bool   `db:"notify_comments" json:"notify_comments"`
	NotifyTrailers    bool   `db:"notify_trailers" json:"notify_trailers"`
	NotifyFriends     bool   `db:"notify_friends" json:"notify_friends"`
	PrivateProfile    bool   `db:"private_profile" json:"private_profile"`
	ShowWatchActivity bool   `db:"show_watch_activity" json:"show_watch_activity"`
}

// DefaultSettings returns the documented defaults for a user.
func DefaultSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:            userID,
		NotifyNews:        true,
		NotifyComments:    true,
		NotifyTrailers:    true,
		NotifyFriends:     true,
		PrivateProfile:    false,
		ShowWatchActivity: true,
	}
}
