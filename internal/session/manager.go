package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextKey is the gin context key holding the request's *Session.
const ContextKey = "session"

// Options configures the session cookie.
type Options struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Manager moves sessions between the cookie and the Store.
type Manager struct {
	store  Store
	opts   Options
	logger *zap.Logger
}

// NewManager creates a session manager.
func NewManager(store Store, opts Options, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.CookieName == "" {
		opts.CookieName = "sessionid"
	}
	return &Manager{store: store, opts: opts, logger: logger}
}

// Load returns the session for the request cookie, or a fresh anonymous one.
func (m *Manager) Load(c *gin.Context) *Session {
	token, err := c.Cookie(m.opts.CookieName)
	if err != nil || token == "" {
		return New()
	}
	sess, err := m.store.Load(c.Request.Context(), token)
	if err != nil {
		if !errors.Is(err, ErrInvalidToken) {
			m.logger.Warn("load session", zap.Error(err))
		}
		fresh := New()
		// the stale cookie gets cleared on commit
		fresh.modified = true
		return fresh
	}
	return sess
}

// Commit writes a modified session back and refreshes or clears the cookie.
// It must run before the response headers are sent.
func (m *Manager) Commit(c *gin.Context, sess *Session) {
	if sess == nil || !sess.modified {
		return
	}
	ctx := c.Request.Context()
	if sess.Empty() {
		if err := m.store.Destroy(ctx, sess); err != nil {
			m.logger.Warn("destroy session", zap.Error(err))
		}
		m.setCookie(c, "", -1)
		sess.modified = false
		return
	}
	token, err := m.store.Save(ctx, sess, m.opts.TTL)
	if err != nil {
		m.logger.Error("save session", zap.Error(err))
		return
	}
	m.setCookie(c, token, int(m.opts.TTL.Seconds()))
	sess.modified = false
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.opts.CookieName, value, maxAge, "/", "", m.opts.Secure, true)
}

// FromContext returns the request session. Outside the session middleware it
// returns a detached anonymous session so callers never see nil.
func FromContext(c *gin.Context) *Session {
	if v, ok := c.Get(ContextKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	s := New()
	c.Set(ContextKey, s)
	return s
}
