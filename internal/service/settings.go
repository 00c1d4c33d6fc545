package service

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

// SettingsService manages the per-user toggle row, created lazily with
// defaults on first access.
type SettingsService struct {
	db       *sqlx.DB
	settings repository.SettingsRepository
}

func NewSettingsService(db *sqlx.DB, settings repository.SettingsRepository) *SettingsService {
	return &SettingsService{db: db, settings: settings}
}

// Get returns the user's settings, inserting the default row first if absent.
func (s *SettingsService) Get(ctx context.Context, userID string) (*model.UserSettings, error) {
	if err := s.ensure(ctx, userID); err != nil {
		return nil, err
	}
	return s.settings.Get(ctx, userID)
}

// Update overwrites all toggles with the given values, ensuring the row
// exists in the same transaction.
func (s *SettingsService) Update(ctx context.Context, settings *model.UserSettings) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.settings.Ensure(ctx, tx, settings.UserID); err != nil {
		return err
	}
	if err := s.settings.Update(ctx, tx, settings); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *SettingsService) ensure(ctx context.Context, userID string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.settings.Ensure(ctx, tx, userID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
