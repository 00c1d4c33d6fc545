package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

const seededKey = "seed.completed"

// seedUserID authors the starter album and reviews. It matches the guest
// sentinel; none of the seeded tables carry a foreign key to users.
const seedUserID = "guest"

// Seeder loads the bundled catalog into an empty store so the app has
// content on first launch.
type Seeder struct {
	db      *sqlx.DB
	movies  repository.MovieRepository
	albums  repository.AlbumRepository
	reviews repository.ReviewRepository
	news    repository.NewsRepository
	shots   repository.ShotRepository
	state   repository.StateRepository
}

func New(
	db *sqlx.DB,
	movies repository.MovieRepository,
	albums repository.AlbumRepository,
	reviews repository.ReviewRepository,
	news repository.NewsRepository,
	shots repository.ShotRepository,
	state repository.StateRepository,
) *Seeder {
	return &Seeder{
		db:      db,
		movies:  movies,
		albums:  albums,
		reviews: reviews,
		news:    news,
		shots:   shots,
		state:   state,
	}
}

// Run seeds the catalog once. It is a no-op when the completion flag is set
// or when movies already exist, so reruns and partially populated stores are
// both safe.
func (s *Seeder) Run(ctx context.Context) error {
	_, done, err := s.state.Get(ctx, seededKey)
	if err != nil {
		return fmt.Errorf("failed to read seed flag: %w", err)
	}
	if done {
		return nil
	}

	count, err := s.movies.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count movies: %w", err)
	}
	if count > 0 {
		log.Printf("[Seeder] Store already has %d movies, marking seeded", count)
		return s.state.Set(ctx, seededKey, "true")
	}

	// The three fixture sets are independent, so load them concurrently.
	// Albums and reviews reference seeded movie ids and follow afterwards.
	var movieIDs []int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		movieIDs, err = s.seedMovies(gctx)
		return err
	})
	g.Go(func() error { return s.seedNews(gctx) })
	g.Go(func() error { return s.seedShots(gctx) })
	if err := g.Wait(); err != nil {
		return err
	}

	if err := s.seedAlbum(ctx, movieIDs); err != nil {
		return err
	}
	if err := s.seedReviews(ctx, movieIDs); err != nil {
		return err
	}

	if err := s.state.Set(ctx, seededKey, "true"); err != nil {
		return fmt.Errorf("failed to set seed flag: %w", err)
	}

	log.Printf("[Seeder] Seeded %d movies, %d news items, %d shots",
		len(fixtureMovies), len(fixtureNews), len(fixtureShots))
	return nil
}

func (s *Seeder) seedMovies(ctx context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(fixtureMovies))
	for i := range fixtureMovies {
		m := fixtureMovies[i]
		if err := s.movies.Create(ctx, &m); err != nil {
			return nil, fmt.Errorf("failed to seed movie %q: %w", m.Title, err)
		}
		ids = append(ids, m.ID)
	}
	return ids, nil
}

func (s *Seeder) seedNews(ctx context.Context) error {
	for i := range fixtureNews {
		n := fixtureNews[i]
		if err := s.news.Create(ctx, &n); err != nil {
			return fmt.Errorf("failed to seed news %q: %w", n.Title, err)
		}
	}
	return nil
}

func (s *Seeder) seedShots(ctx context.Context) error {
	for i := range fixtureShots {
		sh := fixtureShots[i]
		if err := s.shots.Create(ctx, &sh); err != nil {
			return fmt.Errorf("failed to seed shot %q: %w", sh.ImageURL, err)
		}
	}
	return nil
}

// seedAlbum builds a starter album from the first few seeded movies,
// refreshing the cached count in the same transaction as the memberships.
func (s *Seeder) seedAlbum(ctx context.Context, movieIDs []int64) error {
	album := &model.Album{
		UserID:      seedUserID,
		Name:        "Editor Picks",
		Description: "A starting point while your own shelves fill up.",
		Privacy:     model.PrivacyPublic,
	}
	if err := s.albums.Create(ctx, album); err != nil {
		return fmt.Errorf("failed to seed album: %w", err)
	}

	picks := movieIDs
	if len(picks) > 3 {
		picks = picks[:3]
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for position, movieID := range picks {
		if err := s.albums.AddMovie(ctx, tx, album.ID, movieID, position, now); err != nil {
			return fmt.Errorf("failed to seed album movie: %w", err)
		}
	}
	if _, err := s.albums.RefreshMovieCount(ctx, tx, album.ID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *Seeder) seedReviews(ctx context.Context, movieIDs []int64) error {
	if len(movieIDs) == 0 {
		return nil
	}

	rating := 4.5
	reviews := []model.Review{
		{UserID: seedUserID, MovieID: movieIDs[0], Rating: &rating, Body: "A quiet film that earns its runtime. The final act reframes everything before it."},
	}
	if len(movieIDs) > 1 {
		reviews = append(reviews, model.Review{
			UserID:  seedUserID,
			MovieID: movieIDs[1],
			Body:    "Tighter than it has any right to be. Watch it before someone spoils the grid twist.",
		})
	}

	for i := range reviews {
		if err := s.reviews.Create(ctx, &reviews[i]); err != nil {
			return fmt.Errorf("failed to seed review: %w", err)
		}
	}
	return nil
}

var fixtureMovies = []model.Movie{
	{Title: "The Long Horizon", MediaType: model.MediaTypeMovie, Year: 2019, Runtime: 128, Overview: "A cartographer maps a coastline that keeps changing.", PosterURL: "https://img.cinelog.app/posters/long-horizon.jpg", BackdropURL: "https://img.cinelog.app/backdrops/long-horizon.jpg", Genres: "Drama,Mystery", Rating: 4.2},
	{Title: "Copper City", MediaType: model.MediaTypeMovie, Year: 2021, Runtime: 104, Overview: "Two electricians uncover a grid-wide conspiracy.", PosterURL: "https://img.cinelog.app/posters/copper-city.jpg", BackdropURL: "https://img.cinelog.app/backdrops/copper-city.jpg", Genres: "Thriller", Rating: 3.8},
	{Title: "Midnight Orchard", MediaType: model.MediaTypeMovie, Year: 2016, Runtime: 117, Overview: "A family reunion stretches across one endless night.", PosterURL: "https://img.cinelog.app/posters/midnight-orchard.jpg", BackdropURL: "https://img.cinelog.app/backdrops/midnight-orchard.jpg", Genres: "Drama,Comedy", Rating: 4.5},
	{Title: "Static Bloom", MediaType: model.MediaTypeSeries, Year: 2022, Overview: "An offline town rejoins the internet one house at a time.", PosterURL: "https://img.cinelog.app/posters/static-bloom.jpg", BackdropURL: "https://img.cinelog.app/backdrops/static-bloom.jpg", Genres: "Sci-Fi,Drama", Rating: 4.0, SeasonCount: 2, EpisodeCount: 16},
	{Title: "The Ferry Log", MediaType: model.MediaTypeSeries, Year: 2018, Overview: "A night ferry crew and the passengers who never disembark.", PosterURL: "https://img.cinelog.app/posters/ferry-log.jpg", BackdropURL: "https://img.cinelog.app/backdrops/ferry-log.jpg", Genres: "Mystery", Rating: 4.3, SeasonCount: 3, EpisodeCount: 24},
	{Title: "Glass Harvest", MediaType: model.MediaTypeMovie, Year: 2023, Runtime: 139, Overview: "Vineyard workers find a meteor field under the soil.", PosterURL: "https://img.cinelog.app/posters/glass-harvest.jpg", BackdropURL: "https://img.cinelog.app/backdrops/glass-harvest.jpg", Genres: "Sci-Fi", Rating: 3.6},
}

var fixtureNews = []model.News{
	{Title: "Glass Harvest sequel confirmed", Body: "Production starts this winter with the original crew returning.", ImageURL: "https://img.cinelog.app/news/glass-harvest-2.jpg"},
	{Title: "Static Bloom renewed for season 3", Body: "The series will close out its story in eight final episodes.", ImageURL: "https://img.cinelog.app/news/static-bloom-s3.jpg"},
	{Title: "Restored print of Midnight Orchard tours festivals", Body: "A new 4K restoration premieres next month.", ImageURL: "https://img.cinelog.app/news/midnight-orchard-4k.jpg"},
}

var fixtureShots = []model.Shot{
	{UserID: seedUserID, ImageURL: "https://img.cinelog.app/shots/horizon-coast.jpg", Caption: "That coastline shot still gets me."},
	{UserID: seedUserID, ImageURL: "https://img.cinelog.app/shots/orchard-lanterns.jpg", Caption: "Lanterns in the orchard, best frame of 2016."},
}
