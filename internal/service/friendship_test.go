package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

func newFriendshipService(t *testing.T) (*FriendshipService, *sqlx.DB, context.Context) {
	t.Helper()

	db := newTestDB(t)
	svc := NewFriendshipService(
		repository.NewFriendshipRepository(db),
		repository.NewUserRepository(db),
		repository.NewNotificationRepository(db),
		repository.NewSettingsRepository(db),
	)
	return svc, db, context.Background()
}

func TestFriendshipService_RequestAccept(t *testing.T) {
	svc, db, ctx := newFriendshipService(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	f, err := svc.SendFriendRequest(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}
	if f.Status != model.FriendshipPending {
		t.Errorf("status = %q, want %q", f.Status, model.FriendshipPending)
	}

	// Status reads the same from either side of the pair.
	for _, pair := range [][2]string{{alice.ID, bob.ID}, {bob.ID, alice.ID}} {
		status, err := svc.GetFriendshipStatus(ctx, pair[0], pair[1])
		if err != nil {
			t.Fatalf("GetFriendshipStatus(%q, %q) failed: %v", pair[0], pair[1], err)
		}
		if status != model.FriendshipPending {
			t.Errorf("status(%q, %q) = %q, want pending", pair[0], pair[1], status)
		}
	}

	// The receiver cannot accept through the reversed orientation.
	err = svc.AcceptFriendRequest(ctx, bob.ID, alice.ID)
	if !errors.Is(err, model.ErrFriendRequestNotFound) {
		t.Errorf("reversed accept error = %v, want %v", err, model.ErrFriendRequestNotFound)
	}
	status, err := svc.GetFriendshipStatus(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("GetFriendshipStatus failed: %v", err)
	}
	if status != model.FriendshipPending {
		t.Errorf("status after reversed accept = %q, want pending", status)
	}

	if err := svc.AcceptFriendRequest(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("AcceptFriendRequest failed: %v", err)
	}

	friends, err := svc.AreFriends(ctx, bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("AreFriends failed: %v", err)
	}
	if !friends {
		t.Error("AreFriends = false after accept, want true")
	}
}

func TestFriendshipService_DuplicateRequest(t *testing.T) {
	svc, db, ctx := newFriendshipService(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	if _, err := svc.SendFriendRequest(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}

	// A second request in either direction returns the existing row untouched.
	f, err := svc.SendFriendRequest(ctx, bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("duplicate SendFriendRequest failed: %v", err)
	}
	if f.UserID1 != alice.ID || f.UserID2 != bob.ID {
		t.Errorf("row orientation = (%q, %q), want (%q, %q)", f.UserID1, f.UserID2, alice.ID, bob.ID)
	}
	if f.Status != model.FriendshipPending {
		t.Errorf("status = %q, want pending", f.Status)
	}
}

func TestFriendshipService_Reject(t *testing.T) {
	svc, db, ctx := newFriendshipService(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	if _, err := svc.SendFriendRequest(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}
	if err := svc.RejectFriendRequest(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("RejectFriendRequest failed: %v", err)
	}

	status, err := svc.GetFriendshipStatus(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("GetFriendshipStatus failed: %v", err)
	}
	if status != model.FriendshipRejected {
		t.Errorf("status = %q, want rejected", status)
	}

	// Rejected is terminal: accepting afterwards finds no pending row.
	err = svc.AcceptFriendRequest(ctx, alice.ID, bob.ID)
	if !errors.Is(err, model.ErrFriendRequestNotFound) {
		t.Errorf("accept after reject error = %v, want %v", err, model.ErrFriendRequestNotFound)
	}
}

func TestFriendshipService_Unfriend(t *testing.T) {
	svc, db, ctx := newFriendshipService(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	if _, err := svc.SendFriendRequest(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}
	if err := svc.AcceptFriendRequest(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("AcceptFriendRequest failed: %v", err)
	}

	// Either side can unfriend regardless of who sent the request.
	if err := svc.Unfriend(ctx, bob.ID, alice.ID); err != nil {
		t.Fatalf("Unfriend failed: %v", err)
	}

	_, err := svc.GetFriendshipStatus(ctx, alice.ID, bob.ID)
	if !errors.Is(err, model.ErrFriendshipNotFound) {
		t.Errorf("GetFriendshipStatus error = %v, want %v", err, model.ErrFriendshipNotFound)
	}

	err = svc.Unfriend(ctx, alice.ID, bob.ID)
	if !errors.Is(err, model.ErrFriendshipNotFound) {
		t.Errorf("second Unfriend error = %v, want %v", err, model.ErrFriendshipNotFound)
	}
}

func TestFriendshipService_RequestToUnknownUser(t *testing.T) {
	svc, db, ctx := newFriendshipService(t)
	alice := createTestUser(t, db, "alice")

	_, err := svc.SendFriendRequest(ctx, alice.ID, "no-such-user")
	if !errors.Is(err, model.ErrUserNotFound) {
		t.Errorf("SendFriendRequest error = %v, want %v", err, model.ErrUserNotFound)
	}
}

func TestFriendshipService_IncomingRequests(t *testing.T) {
	svc, db, ctx := newFriendshipService(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	if _, err := svc.SendFriendRequest(ctx, alice.ID, carol.ID); err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}
	if _, err := svc.SendFriendRequest(ctx, bob.ID, carol.ID); err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}

	incoming, err := svc.ListIncomingRequests(ctx, carol.ID)
	if err != nil {
		t.Fatalf("ListIncomingRequests failed: %v", err)
	}
	if len(incoming) != 2 {
		t.Fatalf("incoming = %d requests, want 2", len(incoming))
	}

	if err := svc.AcceptFriendRequest(ctx, alice.ID, carol.ID); err != nil {
		t.Fatalf("AcceptFriendRequest failed: %v", err)
	}

	friends, err := svc.ListFriends(ctx, carol.ID)
	if err != nil {
		t.Fatalf("ListFriends failed: %v", err)
	}
	if len(friends) != 1 || friends[0].Username != "alice" {
		t.Errorf("friends = %v, want just alice", friends)
	}
}
