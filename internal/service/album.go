package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

// AlbumService manages albums and their membership. Every membership
// mutation recomputes the cached movie_count inside the same transaction, so
// the cache can never drift from the rows.
type AlbumService struct {
	db          *sqlx.DB
	albums      repository.AlbumRepository
	friendships repository.FriendshipRepository
}

func NewAlbumService(db *sqlx.DB, albums repository.AlbumRepository, friendships repository.FriendshipRepository) *AlbumService {
	return &AlbumService{db: db, albums: albums, friendships: friendships}
}

func (s *AlbumService) Create(ctx context.Context, userID, name, description, privacy string) (*model.Album, error) {
	if strings.TrimSpace(name) == "" {
		return nil, model.ErrAlbumNameEmpty
	}
	if privacy == "" {
		privacy = model.PrivacyPublic
	}
	if !validPrivacy(privacy) {
		return nil, model.ErrInvalidPrivacy
	}

	album := &model.Album{
		UserID:      userID,
		Name:        name,
		Description: description,
		Privacy:     privacy,
	}
	if err := s.albums.Create(ctx, album); err != nil {
		return nil, err
	}

	return album, nil
}

func (s *AlbumService) Update(ctx context.Context, userID string, albumID int64, name, description, privacy string) error {
	album, err := s.ownedAlbum(ctx, userID, albumID)
	if err != nil {
		return err
	}

	if strings.TrimSpace(name) == "" {
		return model.ErrAlbumNameEmpty
	}
	if !validPrivacy(privacy) {
		return model.ErrInvalidPrivacy
	}

	album.Name = name
	album.Description = description
	album.Privacy = privacy

	return s.albums.Update(ctx, album)
}

// Delete removes the album; its membership rows cascade away at the store.
func (s *AlbumService) Delete(ctx context.Context, userID string, albumID int64) error {
	if _, err := s.ownedAlbum(ctx, userID, albumID); err != nil {
		return err
	}
	return s.albums.Delete(ctx, albumID)
}

// GetByID returns the album when the viewer may see it: the owner always,
// anyone for public, accepted friends for friends-only.
func (s *AlbumService) GetByID(ctx context.Context, viewerID string, albumID int64) (*model.Album, error) {
	album, err := s.albums.GetByID(ctx, albumID)
	if err != nil {
		return nil, err
	}

	visible, err := s.visibleTo(ctx, viewerID, album)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, model.ErrAlbumNotFound
	}

	return album, nil
}

// ListByUser returns the owner's albums filtered by what the viewer may see.
func (s *AlbumService) ListByUser(ctx context.Context, viewerID, ownerID string) ([]model.Album, error) {
	albums, err := s.albums.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if viewerID == ownerID {
		return albums, nil
	}

	visible := albums[:0]
	for i := range albums {
		ok, err := s.visibleTo(ctx, viewerID, &albums[i])
		if err != nil {
			return nil, err
		}
		if ok {
			visible = append(visible, albums[i])
		}
	}

	return visible, nil
}

// AddMovie adds a movie at the given position and refreshes the cached count
// in the same transaction.
func (s *AlbumService) AddMovie(ctx context.Context, userID string, albumID, movieID int64, position int) error {
	if _, err := s.ownedAlbum(ctx, userID, albumID); err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.albums.AddMovie(ctx, tx, albumID, movieID, position, time.Now().UTC()); err != nil {
		return err
	}
	if _, err := s.albums.RefreshMovieCount(ctx, tx, albumID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// RemoveMovie removes the membership and refreshes the cached count in the
// same transaction.
func (s *AlbumService) RemoveMovie(ctx context.Context, userID string, albumID, movieID int64) error {
	if _, err := s.ownedAlbum(ctx, userID, albumID); err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := s.albums.RemoveMovie(ctx, tx, albumID, movieID); err != nil {
		return err
	}
	if _, err := s.albums.RefreshMovieCount(ctx, tx, albumID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetMovies lists the album's movies in position order, subject to the same
// visibility rules as GetByID.
func (s *AlbumService) GetMovies(ctx context.Context, viewerID string, albumID int64) ([]model.AlbumEntry, error) {
	if _, err := s.GetByID(ctx, viewerID, albumID); err != nil {
		return nil, err
	}
	return s.albums.GetMovies(ctx, albumID)
}

func (s *AlbumService) AlbumsContainingMovie(ctx context.Context, movieID int64) ([]model.Album, error) {
	return s.albums.AlbumsContainingMovie(ctx, movieID)
}

func (s *AlbumService) ownedAlbum(ctx context.Context, userID string, albumID int64) (*model.Album, error) {
	album, err := s.albums.GetByID(ctx, albumID)
	if err != nil {
		return nil, err
	}
	if album.UserID != userID {
		return nil, model.ErrNotAlbumOwner
	}
	return album, nil
}

func (s *AlbumService) visibleTo(ctx context.Context, viewerID string, album *model.Album) (bool, error) {
	if album.UserID == viewerID || album.Privacy == model.PrivacyPublic {
		return true, nil
	}
	if album.Privacy == model.PrivacyPrivate {
		return false, nil
	}

	f, err := s.friendships.Get(ctx, viewerID, album.UserID)
	if err != nil {
		if err == model.ErrFriendshipNotFound {
			return false, nil
		}
		return false, err
	}
	return f.Status == model.FriendshipAccepted, nil
}

func validPrivacy(p string) bool {
	switch p {
	case model.PrivacyPublic, model.PrivacyFriends, model.PrivacyPrivate:
		return true
	}
	return false
}
