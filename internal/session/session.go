package session

import (
	"context"
	"fmt"
	"sync"

	"cinelog/internal/repository"
)

// State keys persisted through the key/value store.
const (
	keyUserID     = "session.user_id"
	keyIsLoggedIn = "session.is_logged_in"
)

// Session is the current account context for the app. It holds the active
// user ID and login flag in memory, writes every change through to the state
// store, and fans changes out to subscribers.
type Session struct {
	state       repository.StateRepository
	guestUserID string

	mu          sync.RWMutex
	userID      string
	isLoggedIn  bool
	subscribers []chan Current
}

// Current is a snapshot of the session at one point in time.
type Current struct {
	UserID     string
	IsLoggedIn bool
}

func New(state repository.StateRepository, guestUserID string) *Session {
	return &Session{
		state:       state,
		guestUserID: guestUserID,
		userID:      guestUserID,
	}
}

// Load restores the persisted session. Missing or partial state falls back
// to a guest session, so a fresh install starts as guest.
func (s *Session) Load(ctx context.Context) error {
	userID, okUser, err := s.state.Get(ctx, keyUserID)
	if err != nil {
		return fmt.Errorf("failed to load session user: %w", err)
	}
	loggedIn, okFlag, err := s.state.Get(ctx, keyIsLoggedIn)
	if err != nil {
		return fmt.Errorf("failed to load session flag: %w", err)
	}

	s.mu.Lock()
	if okUser && okFlag && loggedIn == "true" {
		s.userID = userID
		s.isLoggedIn = true
	} else {
		s.userID = s.guestUserID
		s.isLoggedIn = false
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

// Login switches the session to the given user and persists it.
func (s *Session) Login(ctx context.Context, userID string) error {
	if err := s.state.Set(ctx, keyUserID, userID); err != nil {
		return fmt.Errorf("failed to persist session user: %w", err)
	}
	if err := s.state.Set(ctx, keyIsLoggedIn, "true"); err != nil {
		return fmt.Errorf("failed to persist session flag: %w", err)
	}

	s.mu.Lock()
	s.userID = userID
	s.isLoggedIn = true
	s.mu.Unlock()

	s.notify()
	return nil
}

// Logout clears the persisted session and drops back to guest.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.state.Delete(ctx, keyUserID); err != nil {
		return fmt.Errorf("failed to clear session user: %w", err)
	}
	if err := s.state.Delete(ctx, keyIsLoggedIn); err != nil {
		return fmt.Errorf("failed to clear session flag: %w", err)
	}

	s.mu.Lock()
	s.userID = s.guestUserID
	s.isLoggedIn = false
	s.mu.Unlock()

	s.notify()
	return nil
}

// StartGuestSession explicitly enters guest mode without touching any
// persisted login of another device profile.
func (s *Session) StartGuestSession() {
	s.mu.Lock()
	s.userID = s.guestUserID
	s.isLoggedIn = false
	s.mu.Unlock()

	s.notify()
}

// Current returns the active user ID and login flag.
func (s *Session) Current() Current {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Current{UserID: s.userID, IsLoggedIn: s.isLoggedIn}
}

// UserID is shorthand for Current().UserID.
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Subscribe returns a channel that receives a snapshot after every session
// change. The channel is buffered; a subscriber that falls behind misses
// intermediate snapshots, not the latest one.
func (s *Session) Subscribe() <-chan Current {
	ch := make(chan Current, 1)
	s.mu.Lock()
	s.subscribers = append(s.subscribers, ch)
	s.mu.Unlock()
	return ch
}

func (s *Session) notify() {
	s.mu.RLock()
	snapshot := Current{UserID: s.userID, IsLoggedIn: s.isLoggedIn}
	subs := s.subscribers
	s.mu.RUnlock()

	for _, ch := range subs {
		select {
		case ch <- snapshot:
		default:
			// Drop the stale snapshot so the latest one always fits.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}
