package session

import (
	"context"
	"testing"

	"cinelog/internal/database"
	"cinelog/internal/repository"
)

func newTestState(t *testing.T) repository.StateRepository {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return repository.NewStateRepository(db)
}

func TestSession_FreshStartIsGuest(t *testing.T) {
	state := newTestState(t)
	s := New(state, "guest")

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	current := s.Current()
	if current.UserID != "guest" {
		t.Errorf("UserID = %q, want %q", current.UserID, "guest")
	}
	if current.IsLoggedIn {
		t.Error("IsLoggedIn = true on fresh start, want false")
	}
}

func TestSession_LoginPersistsAcrossLoads(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)

	s := New(state, "guest")
	if err := s.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := s.Login(ctx, "user-42"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// A second provider over the same store restores the login.
	restored := New(state, "guest")
	if err := restored.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	current := restored.Current()
	if current.UserID != "user-42" {
		t.Errorf("UserID = %q, want %q", current.UserID, "user-42")
	}
	if !current.IsLoggedIn {
		t.Error("IsLoggedIn = false after restore, want true")
	}
}

func TestSession_LogoutDropsToGuest(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)

	s := New(state, "guest")
	if err := s.Login(ctx, "user-42"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := s.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	current := s.Current()
	if current.UserID != "guest" || current.IsLoggedIn {
		t.Errorf("after logout = %+v, want guest and logged out", current)
	}

	// The logout is persisted too.
	restored := New(state, "guest")
	if err := restored.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if restored.Current().IsLoggedIn {
		t.Error("IsLoggedIn = true after restored logout, want false")
	}
}

func TestSession_SubscribeSeesLatestSnapshot(t *testing.T) {
	ctx := context.Background()
	s := New(newTestState(t), "guest")

	ch := s.Subscribe()

	if err := s.Login(ctx, "user-1"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := s.Login(ctx, "user-2"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// The buffer holds one snapshot; a slow subscriber gets the latest.
	snapshot := <-ch
	if snapshot.UserID != "user-2" || !snapshot.IsLoggedIn {
		t.Errorf("snapshot = %+v, want user-2 logged in", snapshot)
	}

	s.StartGuestSession()
	snapshot = <-ch
	if snapshot.UserID != "guest" || snapshot.IsLoggedIn {
		t.Errorf("snapshot = %+v, want guest", snapshot)
	}
}
