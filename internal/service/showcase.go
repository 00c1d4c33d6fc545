package service

import (
	"context"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

// ShowcaseService manages the three favorite-film slots on a profile.
type ShowcaseService struct {
	showcase repository.ShowcaseRepository
	movies   repository.MovieRepository
}

func NewShowcaseService(showcase repository.ShowcaseRepository, movies repository.MovieRepository) *ShowcaseService {
	return &ShowcaseService{showcase: showcase, movies: movies}
}

// SetSlot pins a movie to a slot, replacing whatever was there.
func (s *ShowcaseService) SetSlot(ctx context.Context, userID string, slot int, movieID int64) error {
	if slot < 0 || slot >= model.ShowcaseSlots {
		return model.ErrInvalidSlot
	}
	if _, err := s.movies.GetByID(ctx, movieID); err != nil {
		return err
	}
	return s.showcase.SetSlot(ctx, userID, slot, movieID)
}

// ClearSlot empties a slot. Clearing an already empty slot is a no-op.
func (s *ShowcaseService) ClearSlot(ctx context.Context, userID string, slot int) error {
	if slot < 0 || slot >= model.ShowcaseSlots {
		return model.ErrInvalidSlot
	}
	_, err := s.showcase.ClearSlot(ctx, userID, slot)
	return err
}

// List returns the filled slots in slot order; empty slots are absent.
func (s *ShowcaseService) List(ctx context.Context, userID string) ([]model.ShowcaseEntry, error) {
	return s.showcase.List(ctx, userID)
}
