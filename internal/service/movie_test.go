package service

import (
	"context"
	"errors"
	"testing"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

func TestMovieService_List(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewMovieService(repository.NewMovieRepository(db))

	seedMovies := []model.Movie{
		{Title: "Alpha Dog", MediaType: model.MediaTypeMovie, Year: 2010, Genres: "Drama"},
		{Title: "Beta Wave", MediaType: model.MediaTypeSeries, Year: 2015, Genres: "Sci-Fi,Drama"},
		{Title: "Gamma Ray", MediaType: model.MediaTypeMovie, Year: 2020, Genres: "Sci-Fi"},
	}
	for i := range seedMovies {
		if err := svc.Create(ctx, &seedMovies[i]); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	tests := []struct {
		name   string
		filter model.MovieFilter
		want   int
	}{
		{"no filter", model.MovieFilter{}, 3},
		{"by media type", model.MovieFilter{MediaType: model.MediaTypeSeries}, 1},
		{"by genre", model.MovieFilter{Genre: "Sci-Fi"}, 2},
		{"by search", model.MovieFilter{Search: "gamma"}, 1},
		{"genre and type", model.MovieFilter{MediaType: model.MediaTypeMovie, Genre: "Sci-Fi"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movies, err := svc.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if len(movies) != tt.want {
				t.Errorf("List returned %d movies, want %d", len(movies), tt.want)
			}
		})
	}

	count, err := svc.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Count = %d, want 3", count)
	}
}

func TestMovieService_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	movies := NewMovieService(repository.NewMovieRepository(db))
	albums := NewAlbumService(db,
		repository.NewAlbumRepository(db),
		repository.NewFriendshipRepository(db),
	)
	reviews := NewReviewService(
		repository.NewReviewRepository(db),
		repository.NewMovieRepository(db),
	)
	watchlists := NewWatchlistService(
		repository.NewWatchlistRepository(db),
		repository.NewMovieRepository(db),
	)
	shots := repository.NewShotRepository(db)

	user := createTestUser(t, db, "curator")
	movie := createTestMovie(t, db, "Doomed")

	album, err := albums.Create(ctx, user.ID, "Album", "", model.PrivacyPublic)
	if err != nil {
		t.Fatalf("album create failed: %v", err)
	}
	if err := albums.AddMovie(ctx, user.ID, album.ID, movie.ID, 0); err != nil {
		t.Fatalf("album add failed: %v", err)
	}

	category, err := watchlists.CreateCategory(ctx, user.ID, "Queue")
	if err != nil {
		t.Fatalf("category create failed: %v", err)
	}
	if err := watchlists.AddItem(ctx, user.ID, category.ID, movie.ID); err != nil {
		t.Fatalf("watchlist add failed: %v", err)
	}

	if _, err := reviews.Create(ctx, user.ID, movie.ID, "Gone soon.", nil, nil); err != nil {
		t.Fatalf("review create failed: %v", err)
	}

	shot := &model.Shot{UserID: user.ID, MovieID: &movie.ID, ImageURL: "https://example.com/still.jpg"}
	if err := shots.Create(ctx, shot); err != nil {
		t.Fatalf("shot create failed: %v", err)
	}

	if err := movies.Delete(ctx, movie.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// Memberships, watchlist items and reviews cascade away.
	entries, err := albums.GetMovies(ctx, user.ID, album.ID)
	if err != nil {
		t.Fatalf("GetMovies failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("album still has %d entries, want 0", len(entries))
	}

	items, err := watchlists.ListItems(ctx, user.ID, category.ID)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("watchlist still has %d items, want 0", len(items))
	}

	byMovie, err := reviews.ListByMovie(ctx, movie.ID)
	if err != nil {
		t.Fatalf("ListByMovie failed: %v", err)
	}
	if len(byMovie) != 0 {
		t.Errorf("movie still has %d reviews, want 0", len(byMovie))
	}

	// The shot survives with its movie reference nulled.
	got, err := shots.GetByID(ctx, shot.ID)
	if err != nil {
		t.Fatalf("shot GetByID failed: %v", err)
	}
	if got.MovieID != nil {
		t.Errorf("shot movie reference = %v, want nil", *got.MovieID)
	}

	if _, err := movies.GetByID(ctx, movie.ID); !errors.Is(err, model.ErrMovieNotFound) {
		t.Errorf("GetByID error = %v, want %v", err, model.ErrMovieNotFound)
	}
}
