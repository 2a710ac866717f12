package middleware

import (
	"net/http"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/dimitrije/places-api/internal/models"
)

const (
	// SessionCookie is the cookie holding the signed session token.
	SessionCookie = "places_session"

	sessionKey = "session"
)

// SessionValidator resolves a cookie token to a live session.
type SessionValidator interface {
	Validate(token string) (models.Session, error)
}

// authorize is the single authorization predicate shared by both gate
// variants: a valid session, marked authenticated, for the configured admin
// identity.
func authorize(c *drift.Context, sessions SessionValidator, adminUser string) (models.Session, bool) {
	cookie, err := c.Request.Cookie(SessionCookie)
	if err != nil {
		return models.Session{}, false
	}
	sess, err := sessions.Validate(cookie.Value)
	if err != nil {
		return models.Session{}, false
	}
	if !sess.Authenticated || sess.User != adminUser {
		return models.Session{}, false
	}
	return sess, true
}

// RequireAuth gates API routes: anonymous requests get a JSON 401, never a
// redirect.
func RequireAuth(sessions SessionValidator, adminUser string) drift.HandlerFunc {
	return func(c *drift.Context) {
		sess, ok := authorize(c, sessions, adminUser)
		if !ok {
			c.Unauthorized("authorization required")
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// RequirePageAuth gates admin pages: anonymous requests are redirected to
// the login page instead of receiving a JSON body.
func RequirePageAuth(sessions SessionValidator, adminUser string) drift.HandlerFunc {
	return func(c *drift.Context) {
		sess, ok := authorize(c, sessions, adminUser)
		if !ok {
			http.Redirect(c.Response, c.Request, "/auth", http.StatusFound)
			c.Abort()
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// GetSession returns the session stored by a gate for the current request.
func GetSession(c *drift.Context) (models.Session, bool) {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(models.Session); ok {
			return sess, true
		}
	}
	return models.Session{}, false
}
