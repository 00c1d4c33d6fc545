package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

func newAlbumService(t *testing.T) (*AlbumService, *sqlx.DB, context.Context) {
	t.Helper()

	db := newTestDB(t)
	svc := NewAlbumService(db,
		repository.NewAlbumRepository(db),
		repository.NewFriendshipRepository(db),
	)
	return svc, db, context.Background()
}

func TestAlbumService_MovieCountStaysInSync(t *testing.T) {
	svc, db, ctx := newAlbumService(t)
	owner := createTestUser(t, db, "owner")
	m1 := createTestMovie(t, db, "First")
	m2 := createTestMovie(t, db, "Second")

	album, err := svc.Create(ctx, owner.ID, "Favorites", "", model.PrivacyPublic)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.AddMovie(ctx, owner.ID, album.ID, m1.ID, 0); err != nil {
		t.Fatalf("AddMovie failed: %v", err)
	}
	if err := svc.AddMovie(ctx, owner.ID, album.ID, m2.ID, 1); err != nil {
		t.Fatalf("AddMovie failed: %v", err)
	}

	got, err := svc.GetByID(ctx, owner.ID, album.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.MovieCount != 2 {
		t.Errorf("movie_count = %d, want 2", got.MovieCount)
	}

	// Re-adding the same movie replaces the row; the count must not grow.
	if err := svc.AddMovie(ctx, owner.ID, album.ID, m1.ID, 5); err != nil {
		t.Fatalf("re-AddMovie failed: %v", err)
	}
	got, err = svc.GetByID(ctx, owner.ID, album.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.MovieCount != 2 {
		t.Errorf("movie_count after re-add = %d, want 2", got.MovieCount)
	}

	if err := svc.RemoveMovie(ctx, owner.ID, album.ID, m1.ID); err != nil {
		t.Fatalf("RemoveMovie failed: %v", err)
	}
	got, err = svc.GetByID(ctx, owner.ID, album.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.MovieCount != 1 {
		t.Errorf("movie_count after remove = %d, want 1", got.MovieCount)
	}

	entries, err := svc.GetMovies(ctx, owner.ID, album.ID)
	if err != nil {
		t.Fatalf("GetMovies failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Movie.ID != m2.ID {
		t.Errorf("entries = %v, want just %q", entries, m2.Title)
	}
}

func TestAlbumService_OwnershipGuards(t *testing.T) {
	svc, db, ctx := newAlbumService(t)
	owner := createTestUser(t, db, "owner")
	other := createTestUser(t, db, "other")
	movie := createTestMovie(t, db, "Guarded")

	album, err := svc.Create(ctx, owner.ID, "Mine", "", model.PrivacyPublic)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.AddMovie(ctx, other.ID, album.ID, movie.ID, 0); !errors.Is(err, model.ErrNotAlbumOwner) {
		t.Errorf("AddMovie error = %v, want %v", err, model.ErrNotAlbumOwner)
	}
	if err := svc.Update(ctx, other.ID, album.ID, "Stolen", "", model.PrivacyPublic); !errors.Is(err, model.ErrNotAlbumOwner) {
		t.Errorf("Update error = %v, want %v", err, model.ErrNotAlbumOwner)
	}
	if err := svc.Delete(ctx, other.ID, album.ID); !errors.Is(err, model.ErrNotAlbumOwner) {
		t.Errorf("Delete error = %v, want %v", err, model.ErrNotAlbumOwner)
	}
}

func TestAlbumService_Visibility(t *testing.T) {
	svc, db, ctx := newAlbumService(t)
	owner := createTestUser(t, db, "owner")
	friend := createTestUser(t, db, "friend")
	stranger := createTestUser(t, db, "stranger")

	friendships := NewFriendshipService(
		repository.NewFriendshipRepository(db),
		repository.NewUserRepository(db),
		repository.NewNotificationRepository(db),
		repository.NewSettingsRepository(db),
	)
	if _, err := friendships.SendFriendRequest(ctx, friend.ID, owner.ID); err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}
	if err := friendships.AcceptFriendRequest(ctx, friend.ID, owner.ID); err != nil {
		t.Fatalf("AcceptFriendRequest failed: %v", err)
	}

	private, err := svc.Create(ctx, owner.ID, "Private", "", model.PrivacyPrivate)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	friendsOnly, err := svc.Create(ctx, owner.ID, "Friends", "", model.PrivacyFriends)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Private: owner only. Hidden albums read as not found, not as denied.
	if _, err := svc.GetByID(ctx, owner.ID, private.ID); err != nil {
		t.Errorf("owner GetByID(private) error = %v, want nil", err)
	}
	if _, err := svc.GetByID(ctx, friend.ID, private.ID); !errors.Is(err, model.ErrAlbumNotFound) {
		t.Errorf("friend GetByID(private) error = %v, want %v", err, model.ErrAlbumNotFound)
	}

	// Friends-only: accepted friends yes, strangers no.
	if _, err := svc.GetByID(ctx, friend.ID, friendsOnly.ID); err != nil {
		t.Errorf("friend GetByID(friends) error = %v, want nil", err)
	}
	if _, err := svc.GetByID(ctx, stranger.ID, friendsOnly.ID); !errors.Is(err, model.ErrAlbumNotFound) {
		t.Errorf("stranger GetByID(friends) error = %v, want %v", err, model.ErrAlbumNotFound)
	}

	// ListByUser filters the same way.
	albums, err := svc.ListByUser(ctx, stranger.ID, owner.ID)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(albums) != 0 {
		t.Errorf("stranger sees %d albums, want 0", len(albums))
	}
	albums, err = svc.ListByUser(ctx, owner.ID, owner.ID)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(albums) != 2 {
		t.Errorf("owner sees %d albums, want 2", len(albums))
	}
}
