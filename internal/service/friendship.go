package service

import (
	"context"
	"log"
	"time"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

// FriendshipService drives the three-state friendship machine:
//
//	(no row) --SendFriendRequest--> pending
//	pending --AcceptFriendRequest--> accepted
//	pending --RejectFriendRequest--> rejected
//	any     --Unfriend-->            (no row)
//
// Accept and reject match on the exact requester/receiver orientation; a
// receiver cannot accept through the reversed pair. There is no transition
// from rejected back to pending.
type FriendshipService struct {
	friendships   repository.FriendshipRepository
	users         repository.UserRepository
	notifications repository.NotificationRepository
	settings      repository.SettingsRepository
}

func NewFriendshipService(
	friendships repository.FriendshipRepository,
	users repository.UserRepository,
	notifications repository.NotificationRepository,
	settings repository.SettingsRepository,
) *FriendshipService {
	return &FriendshipService{
		friendships:   friendships,
		users:         users,
		notifications: notifications,
		settings:      settings,
	}
}

// SendFriendRequest creates a pending row with the sender as user_id1. When a
// friendship already exists in any status or orientation the existing row is
// returned untouched; re-requesting after a rejection is unsupported, not an
// error.
func (s *FriendshipService) SendFriendRequest(ctx context.Context, senderID, receiverID string) (*model.Friendship, error) {
	if _, err := s.users.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	f := &model.Friendship{
		UserID1: senderID,
		UserID2: receiverID,
		Status:  model.FriendshipPending,
	}

	created, err := s.friendships.Create(ctx, f)
	if err != nil {
		return nil, err
	}
	if !created {
		return s.friendships.Get(ctx, senderID, receiverID)
	}

	s.notifyFriendEvent(ctx, receiverID, senderID, "sent you a friend request")

	return f, nil
}

// AcceptFriendRequest transitions pending → accepted. The arguments are the
// original roles: requesterID sent the request, receiverID accepts it.
func (s *FriendshipService) AcceptFriendRequest(ctx context.Context, requesterID, receiverID string) error {
	ok, err := s.friendships.UpdateStatusExact(ctx, requesterID, receiverID,
		model.FriendshipPending, model.FriendshipAccepted, time.Now().UTC())
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrFriendRequestNotFound
	}

	s.notifyFriendEvent(ctx, requesterID, receiverID, "accepted your friend request")

	return nil
}

// RejectFriendRequest transitions pending → rejected, matching the exact
// orientation like AcceptFriendRequest.
func (s *FriendshipService) RejectFriendRequest(ctx context.Context, requesterID, receiverID string) error {
	ok, err := s.friendships.UpdateStatusExact(ctx, requesterID, receiverID,
		model.FriendshipPending, model.FriendshipRejected, time.Now().UTC())
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrFriendRequestNotFound
	}
	return nil
}

// Unfriend deletes the pair regardless of status or orientation.
func (s *FriendshipService) Unfriend(ctx context.Context, a, b string) error {
	ok, err := s.friendships.DeleteAny(ctx, a, b)
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrFriendshipNotFound
	}
	return nil
}

// GetFriendshipStatus reads the same answer from either side of the pair.
func (s *FriendshipService) GetFriendshipStatus(ctx context.Context, a, b string) (model.FriendshipStatus, error) {
	f, err := s.friendships.Get(ctx, a, b)
	if err != nil {
		return "", err
	}
	return f.Status, nil
}

func (s *FriendshipService) ListFriends(ctx context.Context, userID string) ([]model.UserSummary, error) {
	return s.friendships.ListFriends(ctx, userID)
}

func (s *FriendshipService) ListIncomingRequests(ctx context.Context, userID string) ([]model.UserSummary, error) {
	return s.friendships.ListIncomingPending(ctx, userID)
}

// AreFriends reports whether the pair is in the accepted state.
func (s *FriendshipService) AreFriends(ctx context.Context, a, b string) (bool, error) {
	f, err := s.friendships.Get(ctx, a, b)
	if err != nil {
		if err == model.ErrFriendshipNotFound {
			return false, nil
		}
		return false, err
	}
	return f.Status == model.FriendshipAccepted, nil
}

// notifyFriendEvent delivers a FRIEND notification unless the recipient has
// them switched off. Delivery is best-effort; the state transition already
// happened.
func (s *FriendshipService) notifyFriendEvent(ctx context.Context, recipientID, actorID, message string) {
	settings, err := s.settings.Get(ctx, recipientID)
	if err != nil {
		log.Printf("[FriendshipService] Failed to load settings: user=%s err=%v", recipientID, err)
		return
	}
	if settings != nil && !settings.NotifyFriends {
		return
	}

	err = s.notifications.Create(ctx, &model.Notification{
		UserID:  recipientID,
		Type:    model.NotificationFriend,
		ActorID: &actorID,
		Message: message,
	})
	if err != nil {
		log.Printf("[FriendshipService] Failed to create notification: user=%s err=%v", recipientID, err)
	}
}
