package service

import (
	"context"
	"testing"

	"cinelog/internal/repository"
)

func TestSettingsService_LazyDefaults(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewSettingsService(db, repository.NewSettingsRepository(db))

	settings, err := svc.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !settings.NotifyNews || !settings.NotifyComments || !settings.NotifyTrailers || !settings.NotifyFriends {
		t.Errorf("defaults = %+v, want all notifications on", settings)
	}
	if settings.PrivateProfile || !settings.ShowWatchActivity {
		t.Errorf("defaults = %+v, want public profile with visible activity", settings)
	}
}

func TestSettingsService_Update(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewSettingsService(db, repository.NewSettingsRepository(db))

	settings, err := svc.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	settings.NotifyComments = false
	settings.PrivateProfile = true
	if err := svc.Update(ctx, settings); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := svc.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.NotifyComments {
		t.Error("NotifyComments = true after update, want false")
	}
	if !got.PrivateProfile {
		t.Error("PrivateProfile = false after update, want true")
	}
	if !got.NotifyNews {
		t.Error("NotifyNews = false, want untouched true")
	}

	// Update on a user with no prior row creates it in the same call.
	fresh, err := svc.Get(ctx, "u2")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	fresh.ShowWatchActivity = false
	if err := svc.Update(ctx, fresh); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, err = svc.Get(ctx, "u2")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ShowWatchActivity {
		t.Error("ShowWatchActivity = true after update, want false")
	}
}
