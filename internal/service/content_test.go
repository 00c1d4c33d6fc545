package service

import (
	"context"
	"errors"
	"testing"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

func newContentService(t *testing.T) (*ContentService, context.Context) {
	t.Helper()

	db := newTestDB(t)
	svc := NewContentService(
		repository.NewNewsRepository(db),
		repository.NewShotRepository(db),
	)
	return svc, context.Background()
}

func TestContentService_Shots(t *testing.T) {
	svc, ctx := newContentService(t)

	if _, err := svc.PostShot(ctx, "u1", "  ", "caption", nil); !errors.Is(err, model.ErrShotImageEmpty) {
		t.Errorf("empty image error = %v, want %v", err, model.ErrShotImageEmpty)
	}

	shot, err := svc.PostShot(ctx, "u1", "https://example.com/still.jpg", "nice frame", nil)
	if err != nil {
		t.Fatalf("PostShot failed: %v", err)
	}
	if shot.ID == 0 {
		t.Error("expected assigned shot ID")
	}

	got, err := svc.GetShot(ctx, shot.ID)
	if err != nil {
		t.Fatalf("GetShot failed: %v", err)
	}
	if got.Caption != "nice frame" {
		t.Errorf("caption = %q, want %q", got.Caption, "nice frame")
	}

	_, err = svc.GetShot(ctx, 9999)
	if !errors.Is(err, model.ErrShotNotFound) {
		t.Errorf("GetShot error = %v, want %v", err, model.ErrShotNotFound)
	}

	recent, err := svc.RecentShots(ctx, 0)
	if err != nil {
		t.Fatalf("RecentShots failed: %v", err)
	}
	if len(recent) != 1 {
		t.Errorf("recent = %d shots, want 1", len(recent))
	}
}

func TestContentService_News(t *testing.T) {
	svc, ctx := newContentService(t)

	_, err := svc.GetNews(ctx, 9999)
	if !errors.Is(err, model.ErrNewsNotFound) {
		t.Errorf("GetNews error = %v, want %v", err, model.ErrNewsNotFound)
	}

	recent, err := svc.RecentNews(ctx, 0)
	if err != nil {
		t.Fatalf("RecentNews failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("recent = %d items on empty store, want 0", len(recent))
	}
}
