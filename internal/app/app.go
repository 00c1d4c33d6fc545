package app

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/config"
	"cinelog/internal/database"
	"cinelog/internal/repository"
	"cinelog/internal/seed"
	"cinelog/internal/service"
	"cinelog/internal/session"
)

// App wires the store, repositories and services together and owns the
// process lifecycle.
type App struct {
	DB      *sqlx.DB
	Session *session.Session

	Auth          *service.AuthService
	Users         *service.UserService
	Movies        *service.MovieService
	Albums        *service.AlbumService
	Reviews       *service.ReviewService
	Comments      *service.CommentService
	Social        *service.SocialService
	Friendships   *service.FriendshipService
	Notifications *service.NotificationService
	Activity      *service.ActivityService
	Stats         *service.StatsService
	Watchlists    *service.WatchlistService
	Showcase      *service.ShowcaseService
	Settings      *service.SettingsService
	Content       *service.ContentService

	seeder *seed.Seeder
	cfg    *config.Config
}

func New(cfg *config.Config) (*App, error) {
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	users := repository.NewUserRepository(db)
	movies := repository.NewMovieRepository(db)
	albums := repository.NewAlbumRepository(db)
	savedAlbums := repository.NewSavedAlbumRepository(db)
	reviews := repository.NewReviewRepository(db)
	comments := repository.NewCommentRepository(db)
	likes := repository.NewLikeRepository(db)
	follows := repository.NewFollowRepository(db)
	friendships := repository.NewFriendshipRepository(db)
	notifications := repository.NewNotificationRepository(db)
	activity := repository.NewActivityRepository(db)
	stats := repository.NewStatsRepository(db)
	watchlists := repository.NewWatchlistRepository(db)
	showcase := repository.NewShowcaseRepository(db)
	settings := repository.NewSettingsRepository(db)
	news := repository.NewNewsRepository(db)
	shots := repository.NewShotRepository(db)
	state := repository.NewStateRepository(db)

	return &App{
		DB:      db,
		Session: session.New(state, cfg.GuestUserID),

		Auth:          service.NewAuthService(users),
		Users:         service.NewUserService(users, follows),
		Movies:        service.NewMovieService(movies),
		Albums:        service.NewAlbumService(db, albums, friendships),
		Reviews:       service.NewReviewService(reviews, movies),
		Comments:      service.NewCommentService(comments, reviews, notifications, settings),
		Social:        service.NewSocialService(db, likes, follows, savedAlbums, activity),
		Friendships:   service.NewFriendshipService(friendships, users, notifications, settings),
		Notifications: service.NewNotificationService(notifications),
		Activity:      service.NewActivityService(activity),
		Stats:         service.NewStatsService(db, stats, activity),
		Watchlists:    service.NewWatchlistService(watchlists, movies),
		Showcase:      service.NewShowcaseService(showcase, movies),
		Settings:      service.NewSettingsService(db, settings),
		Content:       service.NewContentService(news, shots),

		seeder: seed.New(db, movies, albums, reviews, news, shots, state),
		cfg:    cfg,
	}, nil
}

// Start restores the persisted session and runs the first-launch seeding.
func (a *App) Start(ctx context.Context) error {
	if err := a.Session.Load(ctx); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	if a.cfg.SeedOnStart {
		if err := a.seeder.Run(ctx); err != nil {
			return fmt.Errorf("failed to seed store: %w", err)
		}
	}

	current := a.Session.Current()
	log.Printf("[App] Ready: user=%s loggedIn=%t db=%s", current.UserID, current.IsLoggedIn, a.cfg.DBPath)
	return nil
}

func (a *App) Close() error {
	return a.DB.Close()
}
