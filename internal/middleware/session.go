package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oddam/donations/internal/models"
	"github.com/oddam/donations/internal/routes"
	"github.com/oddam/donations/internal/session"
	"github.com/oddam/donations/pkg/response"
)

// UserLookup resolves the user a session points at.
type UserLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Session loads the visitor's session, resolves the logged-in user into the
// context and writes the session back before the response headers go out.
// Sessions of deleted or deactivated users are logged out.
func Session(m *session.Manager, users UserLookup, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := m.Load(c)
		c.Set(session.ContextKey, sess)

		w := &sessionWriter{ResponseWriter: c.Writer, commit: func() { m.Commit(c, sess) }}
		c.Writer = w

		if sess.Authenticated() {
			user, err := users.GetByID(c.Request.Context(), sess.UserID)
			switch {
			case errors.Is(err, models.ErrNotFound):
				sess.Logout()
			case err != nil:
				logger.Error("load session user", zap.Error(err))
				response.Internal(c)
				return
			case !user.IsActive:
				sess.Logout()
			default:
				pub := user.ToPublic()
				c.Set(response.ContextUser, &pub)
			}
		}

		c.Next()
		w.flush()
	}
}

// sessionWriter commits the session the first time anything is about to be written.
type sessionWriter struct {
	gin.ResponseWriter
	commit    func()
	committed bool
}

func (w *sessionWriter) flush() {
	if w.committed {
		return
	}
	w.committed = true
	w.commit()
}

func (w *sessionWriter) WriteHeader(code int) {
	w.flush()
	w.ResponseWriter.WriteHeader(code)
}

func (w *sessionWriter) WriteHeaderNow() {
	w.flush()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *sessionWriter) Write(b []byte) (int, error) {
	w.flush()
	return w.ResponseWriter.Write(b)
}

func (w *sessionWriter) WriteString(s string) (int, error) {
	w.flush()
	return w.ResponseWriter.WriteString(s)
}

// RequireLogin sends anonymous visitors to the login page, remembering where they were going.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if response.CurrentUser(c) == nil {
			response.Redirect(c, routes.LoginWithNext(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}
