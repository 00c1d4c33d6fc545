package service

import (
	"context"
	"testing"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

func TestNotificationService_ReadFlow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewNotificationService(repository.NewNotificationRepository(db))

	actor := "actor-1"
	for i := 0; i < 3; i++ {
		err := svc.Notify(ctx, &model.Notification{
			UserID:  "u1",
			Type:    model.NotificationNews,
			ActorID: &actor,
			Message: "fresh news",
		})
		if err != nil {
			t.Fatalf("Notify failed: %v", err)
		}
	}

	unread, err := svc.UnreadCount(ctx, "u1")
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if unread != 3 {
		t.Errorf("unread = %d, want 3", unread)
	}

	list, err := svc.ListForUser(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("ListForUser failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("list = %d entries, want 3", len(list))
	}

	if err := svc.MarkRead(ctx, "u1", []int64{list[0].ID}); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	unread, err = svc.UnreadCount(ctx, "u1")
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if unread != 2 {
		t.Errorf("unread after MarkRead = %d, want 2", unread)
	}

	// Marking reads only touches the addressed user's rows.
	other := &model.Notification{UserID: "u2", Type: model.NotificationTrailer, Message: "trailer drop"}
	if err := svc.Notify(ctx, other); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if err := svc.MarkAllRead(ctx, "u1"); err != nil {
		t.Fatalf("MarkAllRead failed: %v", err)
	}

	unread, err = svc.UnreadCount(ctx, "u1")
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if unread != 0 {
		t.Errorf("unread after MarkAllRead = %d, want 0", unread)
	}
	unread, err = svc.UnreadCount(ctx, "u2")
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if unread != 1 {
		t.Errorf("other user's unread = %d, want 1", unread)
	}
}
