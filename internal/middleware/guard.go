package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mbsaloka/AutoEssayGrader/internal/metrics"
	"github.com/mbsaloka/AutoEssayGrader/internal/session"
)

// Redirect targets are fixed routes, not configurable per call site.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// RequireAuth admits only authenticated sessions. Unauthenticated
// visitors are redirected to the login page. The redirect is keyed to
// the resolved state: resolution happens exactly once per request, so
// a request can never redirect twice or loop.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := Session(c)

		if sc.Resolve(c.Request.Context()) != session.StateAuthenticated {
			metrics.GuardRedirects.WithLabelValues("auth").Inc()
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireGuest admits only anonymous visitors; an authenticated session
// is sent to the dashboard instead. Symmetric to RequireAuth.
func RequireGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := Session(c)

		if sc.Resolve(c.Request.Context()) == session.StateAuthenticated {
			metrics.GuardRedirects.WithLabelValues("guest").Inc()
			c.Redirect(http.StatusFound, DashboardPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
