package service

import (
	"context"
	"errors"
	"testing"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

func TestShowcaseService_Slots(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewShowcaseService(
		repository.NewShowcaseRepository(db),
		repository.NewMovieRepository(db),
	)

	user := createTestUser(t, db, "profiled")
	m1 := createTestMovie(t, db, "Slot Zero")
	m2 := createTestMovie(t, db, "Slot Zero Replacement")

	if err := svc.SetSlot(ctx, user.ID, 3, m1.ID); !errors.Is(err, model.ErrInvalidSlot) {
		t.Errorf("SetSlot(3) error = %v, want %v", err, model.ErrInvalidSlot)
	}
	if err := svc.SetSlot(ctx, user.ID, -1, m1.ID); !errors.Is(err, model.ErrInvalidSlot) {
		t.Errorf("SetSlot(-1) error = %v, want %v", err, model.ErrInvalidSlot)
	}
	if err := svc.SetSlot(ctx, user.ID, 0, 9999); !errors.Is(err, model.ErrMovieNotFound) {
		t.Errorf("unknown movie error = %v, want %v", err, model.ErrMovieNotFound)
	}

	if err := svc.SetSlot(ctx, user.ID, 0, m1.ID); err != nil {
		t.Fatalf("SetSlot failed: %v", err)
	}
	// Setting the same slot again replaces the occupant.
	if err := svc.SetSlot(ctx, user.ID, 0, m2.ID); err != nil {
		t.Fatalf("replace SetSlot failed: %v", err)
	}

	entries, err := svc.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].SlotPosition != 0 || entries[0].Movie.ID != m2.ID {
		t.Errorf("entry = slot %d movie %d, want slot 0 movie %d", entries[0].SlotPosition, entries[0].Movie.ID, m2.ID)
	}

	if err := svc.ClearSlot(ctx, user.ID, 0); err != nil {
		t.Fatalf("ClearSlot failed: %v", err)
	}
	// Clearing an already empty slot is a no-op.
	if err := svc.ClearSlot(ctx, user.ID, 0); err != nil {
		t.Errorf("second ClearSlot error = %v, want nil", err)
	}

	entries, err = svc.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries after clear = %d, want 0", len(entries))
	}
}
