package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

func newCommentService(t *testing.T) (*CommentService, *sqlx.DB, context.Context) {
	t.Helper()

	db := newTestDB(t)
	svc := NewCommentService(
		repository.NewCommentRepository(db),
		repository.NewReviewRepository(db),
		repository.NewNotificationRepository(db),
		repository.NewSettingsRepository(db),
	)
	return svc, db, context.Background()
}

func TestCommentService_Threading(t *testing.T) {
	svc, db, ctx := newCommentService(t)
	author := createTestUser(t, db, "author")
	movie := createTestMovie(t, db, "Discussed")

	reviews := NewReviewService(repository.NewReviewRepository(db), repository.NewMovieRepository(db))
	review, err := reviews.Create(ctx, author.ID, movie.ID, "Discuss.", nil, nil)
	if err != nil {
		t.Fatalf("review create failed: %v", err)
	}

	root, err := svc.Create(ctx, "commenter", model.TargetReview, review.ID, nil, "First!")
	if err != nil {
		t.Fatalf("root comment failed: %v", err)
	}

	reply, err := svc.Create(ctx, "replier", model.TargetReview, review.ID, &root.ID, "Replying.")
	if err != nil {
		t.Fatalf("reply failed: %v", err)
	}
	if reply.ParentCommentID == nil || *reply.ParentCommentID != root.ID {
		t.Errorf("reply parent = %v, want %d", reply.ParentCommentID, root.ID)
	}

	// A reply must point at a parent on the same target.
	_, err = svc.Create(ctx, "replier", model.TargetNews, 1, &root.ID, "Wrong thread.")
	if !errors.Is(err, model.ErrParentMismatch) {
		t.Errorf("cross-target reply error = %v, want %v", err, model.ErrParentMismatch)
	}

	count, err := svc.CountForTarget(ctx, model.TargetReview, review.ID)
	if err != nil {
		t.Fatalf("CountForTarget failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestCommentService_Validation(t *testing.T) {
	svc, _, ctx := newCommentService(t)

	if _, err := svc.Create(ctx, "u1", "movie", 1, nil, "hi"); !errors.Is(err, model.ErrInvalidTargetType) {
		t.Errorf("invalid target error = %v, want %v", err, model.ErrInvalidTargetType)
	}
	if _, err := svc.Create(ctx, "u1", model.TargetNews, 1, nil, "   "); !errors.Is(err, model.ErrCommentBodyEmpty) {
		t.Errorf("empty body error = %v, want %v", err, model.ErrCommentBodyEmpty)
	}
}

func TestCommentService_Delete(t *testing.T) {
	svc, _, ctx := newCommentService(t)

	comment, err := svc.Create(ctx, "u1", model.TargetNews, 1, nil, "Mine.")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(ctx, "u2", comment.ID); !errors.Is(err, model.ErrNotCommentAuthor) {
		t.Errorf("foreign delete error = %v, want %v", err, model.ErrNotCommentAuthor)
	}
	if err := svc.Delete(ctx, "u1", comment.ID); err != nil {
		t.Errorf("author delete error = %v, want nil", err)
	}
}

func TestCommentService_NotifiesReviewAuthor(t *testing.T) {
	svc, db, ctx := newCommentService(t)
	author := createTestUser(t, db, "author")
	movie := createTestMovie(t, db, "Noticed")

	reviews := NewReviewService(repository.NewReviewRepository(db), repository.NewMovieRepository(db))
	review, err := reviews.Create(ctx, author.ID, movie.ID, "Notify me.", nil, nil)
	if err != nil {
		t.Fatalf("review create failed: %v", err)
	}

	notifications := repository.NewNotificationRepository(db)

	// Commenting on your own review stays silent.
	if _, err := svc.Create(ctx, author.ID, model.TargetReview, review.ID, nil, "Self note."); err != nil {
		t.Fatalf("self comment failed: %v", err)
	}
	unread, err := notifications.UnreadCount(ctx, author.ID)
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if unread != 0 {
		t.Errorf("unread after self comment = %d, want 0", unread)
	}

	if _, err := svc.Create(ctx, "stranger", model.TargetReview, review.ID, nil, "Nice review."); err != nil {
		t.Fatalf("comment failed: %v", err)
	}
	unread, err = notifications.UnreadCount(ctx, author.ID)
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if unread != 1 {
		t.Errorf("unread = %d, want 1", unread)
	}

	list, err := notifications.ListForUser(ctx, author.ID, 10)
	if err != nil {
		t.Fatalf("ListForUser failed: %v", err)
	}
	if len(list) != 1 || list[0].Type != model.NotificationComment {
		t.Fatalf("notifications = %v, want one COMMENT", list)
	}
}
