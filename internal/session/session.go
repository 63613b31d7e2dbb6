// Package session keeps per-visitor state (the logged-in user and flash messages)
// behind a pluggable Store, carried between requests by a single cookie.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidToken is returned by stores when a cookie value cannot be resolved to a session.
var ErrInvalidToken = errors.New("invalid session token")

// Session is the state attached to one browser.
type Session struct {
	ID        string
	UserID    uuid.UUID
	Flashes   []string
	ExpiresAt time.Time

	previousID string
	modified   bool
}

// New returns an empty anonymous session with a fresh ID.
func New() *Session {
	return &Session{ID: uuid.NewString()}
}

// Authenticated reports whether a user is logged in.
func (s *Session) Authenticated() bool {
	return s.UserID != uuid.Nil
}

// Login binds the session to userID under a new session ID.
func (s *Session) Login(userID uuid.UUID) {
	s.rotate()
	s.UserID = userID
}

// Logout forgets the user and any pending messages under a new session ID.
func (s *Session) Logout() {
	s.rotate()
	s.UserID = uuid.Nil
	s.Flashes = nil
}

// AddFlash queues a message for the next rendered page.
func (s *Session) AddFlash(msg string) {
	s.Flashes = append(s.Flashes, msg)
	s.modified = true
}

// PopFlashes returns and clears queued messages.
func (s *Session) PopFlashes() []string {
	if len(s.Flashes) == 0 {
		return nil
	}
	out := s.Flashes
	s.Flashes = nil
	s.modified = true
	return out
}

// Modified reports whether the session must be written back.
func (s *Session) Modified() bool {
	return s.modified
}

// Empty reports whether there is nothing worth persisting.
func (s *Session) Empty() bool {
	return !s.Authenticated() && len(s.Flashes) == 0
}

func (s *Session) rotate() {
	if s.previousID == "" {
		s.previousID = s.ID
	}
	s.ID = uuid.NewString()
	s.modified = true
}

// Store persists sessions and maps them to cookie values.
type Store interface {
	// Load resolves a cookie value. It returns ErrInvalidToken for unknown,
	// expired or tampered values.
	Load(ctx context.Context, token string) (*Session, error)
	// Save persists s until ttl elapses and returns the cookie value.
	Save(ctx context.Context, s *Session, ttl time.Duration) (string, error)
	// Destroy removes s, including state kept under an ID it was rotated away from.
	Destroy(ctx context.Context, s *Session) error
}
