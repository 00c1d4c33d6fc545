package service

import (
	"context"
	"testing"
	"time"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

func TestActivityService_WatchHistory(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewActivityService(repository.NewActivityRepository(db))

	user := createTestUser(t, db, "viewer")
	first := createTestMovie(t, db, "Seen First")
	second := createTestMovie(t, db, "Seen Second")

	mustRecord := func(movieID int64, at time.Time) {
		t.Helper()
		_, err := db.ExecContext(ctx,
			`INSERT INTO user_activity (user_id, action_type, target_type, target_id, created_at)
			 VALUES (?, 'view', 'movie', ?, ?)`, user.ID, movieID, at)
		if err != nil {
			t.Fatalf("insert activity failed: %v", err)
		}
	}

	now := time.Now().UTC()
	mustRecord(first.ID, now.Add(-2*time.Hour))
	mustRecord(second.ID, now.Add(-1*time.Hour))
	// Rewatching bumps the movie to the top without duplicating it.
	mustRecord(first.ID, now)

	history, err := svc.WatchHistory(ctx, user.ID, 10)
	if err != nil {
		t.Fatalf("WatchHistory failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history = %d movies, want 2", len(history))
	}
	if history[0].ID != first.ID || history[1].ID != second.ID {
		t.Errorf("history order = [%d, %d], want [%d, %d]",
			history[0].ID, history[1].ID, first.ID, second.ID)
	}
}

func TestActivityService_ViewCount(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewActivityService(repository.NewActivityRepository(db))

	for i := 0; i < 3; i++ {
		if err := svc.Record(ctx, "u1", model.ActionView, "movie", 5); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}
	if err := svc.Record(ctx, "u1", model.ActionLike, "movie", 5); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	count, err := svc.ViewCount(ctx, "movie", 5)
	if err != nil {
		t.Fatalf("ViewCount failed: %v", err)
	}
	if count != 3 {
		t.Errorf("ViewCount = %d, want 3 (likes must not count)", count)
	}
}

func TestActivityService_RetentionSweep(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewActivityService(repository.NewActivityRepository(db))

	old := time.Now().UTC().Add(-48 * time.Hour)
	_, err := db.ExecContext(ctx,
		`INSERT INTO user_activity (user_id, action_type, target_type, target_id, created_at)
		 VALUES ('u1', 'view', 'movie', 1, ?)`, old)
	if err != nil {
		t.Fatalf("insert old activity failed: %v", err)
	}
	if err := svc.Record(ctx, "u1", model.ActionView, "movie", 2); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	removed, err := svc.DeleteOldActivity(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("DeleteOldActivity failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	count, err := svc.ViewCount(ctx, "movie", 2)
	if err != nil {
		t.Fatalf("ViewCount failed: %v", err)
	}
	if count != 1 {
		t.Errorf("recent row missing after sweep")
	}
}
