// Package middleware wires the session state machine into the request
// pipeline and provides the two route guards.
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mbsaloka/AutoEssayGrader/internal/cookie"
	"github.com/mbsaloka/AutoEssayGrader/internal/kv"
	"github.com/mbsaloka/AutoEssayGrader/internal/session"
)

const sessionContextKey = "grademind_session"

// Session returns the request's session state machine. Panics when the
// session middleware is not installed, which is a wiring bug.
func Session(c *gin.Context) *session.Context {
	sc, ok := c.Get(sessionContextKey)
	if !ok {
		panic("middleware: session middleware not installed")
	}
	return sc.(*session.Context)
}

// WithSession builds the per-request cookie jar, device identity, and
// session state machine. It must run before any guard or handler that
// touches authentication. The session starts unresolved; whoever needs
// the state first pays for the single storage read.
func WithSession(fallback kv.Store, secure bool, domain string) gin.HandlerFunc {
	return func(c *gin.Context) {
		jar := cookie.NewJar(c.Writer, c.Request)
		deviceID := session.EnsureDeviceID(jar, secure, domain)
		repo := session.NewRepository(jar, fallback, deviceID, secure, domain)

		c.Set(sessionContextKey, session.NewContext(repo))
		c.Next()
	}
}
