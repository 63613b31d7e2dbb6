package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// claims is the signed cookie payload.
type claims struct {
	UserID  string   `json:"uid,omitempty"`
	Flashes []string `json:"fl,omitempty"`
	jwt.RegisteredClaims
}

// CookieStore keeps the whole session client-side in an HS256-signed JWT.
type CookieStore struct {
	secret []byte
	now    func() time.Time
}

// NewCookieStore creates a cookie-backed store signing with secret.
func NewCookieStore(secret string) *CookieStore {
	return &CookieStore{secret: []byte(secret), now: time.Now}
}

// Load parses and verifies a signed session cookie.
func (s *CookieStore) Load(_ context.Context, token string) (*Session, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	sess := &Session{ID: c.ID, Flashes: c.Flashes}
	if c.ExpiresAt != nil {
		sess.ExpiresAt = c.ExpiresAt.Time
	}
	if c.UserID != "" {
		uid, err := uuid.Parse(c.UserID)
		if err != nil {
			return nil, ErrInvalidToken
		}
		sess.UserID = uid
	}
	return sess, nil
}

// Save signs the session into a cookie value.
func (s *CookieStore) Save(_ context.Context, sess *Session, ttl time.Duration) (string, error) {
	now := s.now()
	sess.ExpiresAt = now.Add(ttl)
	c := claims{
		Flashes: sess.Flashes,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	}
	if sess.Authenticated() {
		c.UserID = sess.UserID.String()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}

// Destroy is a no-op: there is no server-side state, the manager expires the cookie.
func (s *CookieStore) Destroy(context.Context, *Session) error {
	return nil
}
