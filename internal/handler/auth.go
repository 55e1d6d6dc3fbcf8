package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mbsaloka/AutoEssayGrader/internal/backend"
	"github.com/mbsaloka/AutoEssayGrader/internal/logger"
	"github.com/mbsaloka/AutoEssayGrader/internal/metrics"
	"github.com/mbsaloka/AutoEssayGrader/internal/middleware"
	"github.com/mbsaloka/AutoEssayGrader/internal/session"
)

type loginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	resp, err := h.client(c).Login(c.Request.Context(), backend.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		relayError(c, err)
		return
	}

	raw, err := resp.User.Raw()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to persist session"})
		return
	}

	sess, err := sessionOf(c).Login(c.Request.Context(), raw, resp.AccessToken, req.RememberMe)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to persist session"})
		return
	}

	metrics.Logins.WithLabelValues("password").Inc()
	logger.Info("login", map[string]any{
		"user_id":     resp.User.ID,
		"remember_me": req.RememberMe,
	})

	c.JSON(http.StatusOK, gin.H{
		"user":            resp.User,
		"login_timestamp": sess.LoginTimestamp,
	})
}

type registerRequest struct {
	Fullname    string `json:"fullname" binding:"required"`
	Username    string `json:"username" binding:"required,username"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	UserRole    string `json:"user_role" binding:"omitempty,oneof=dosen mahasiswa"`
	Institution string `json:"institution"`
}

// Register proxies account creation. It deliberately does not create a
// session; the visitor signs in afterwards, matching the register-then-
// redirect flow of the web client.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	resp, err := h.client(c).Register(c.Request.Context(), backend.RegisterRequest{
		Fullname:    req.Fullname,
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		UserRole:    req.UserRole,
		Institution: req.Institution,
	})
	if err != nil {
		relayError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Logout(c *gin.Context) {
	sc := sessionOf(c)
	ctx := c.Request.Context()

	// Best-effort server-side invalidation before the stores are
	// cleared; a backend hiccup must not keep the visitor signed in.
	if token := sc.Repository().Token(ctx); token != "" {
		if err := h.client(c).Logout(ctx, token); err != nil {
			logger.Warn("backend logout failed", map[string]any{
				"error": err.Error(),
			})
		}
	}

	if err := sc.Logout(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to clear session"})
		return
	}

	metrics.Logouts.Inc()
	c.Status(http.StatusNoContent)
}

// OAuthStart fetches the provider's consent URL from the backend and
// sends the browser there. The code exchange happens backend-side.
func (h *Handler) OAuthStart(c *gin.Context) {
	authURL, err := h.client(c).AuthorizationURL(c.Request.Context(), c.Param("provider"))
	if err != nil {
		relayError(c, err)
		return
	}
	c.Redirect(http.StatusFound, authURL)
}

// OAuthCallback completes an OAuth login. The backend redirects here
// with a finished bearer token in the query string; that token is the
// only material that arrives outside the login flow, and it still
// funnels through Login before anything is persisted.
func (h *Handler) OAuthCallback(c *gin.Context) {
	sc := sessionOf(c)
	ctx := c.Request.Context()

	// Resolve first: a session established in another tab wins, and a
	// guard racing this page sees one consistent answer.
	if sc.Resolve(ctx) == session.StateAuthenticated {
		c.Redirect(http.StatusFound, middleware.DashboardPath)
		return
	}

	token := c.Query("token")
	if token == "" || c.Query("error") != "" {
		logger.Warn("oauth callback without token", map[string]any{
			"provider": c.Param("provider"),
			"error":    c.Query("error"),
		})
		c.Redirect(http.StatusFound, middleware.LoginPath+"?error=oauth_failed")
		return
	}

	user, err := h.client(c).CurrentUser(ctx, &backend.RequestConfig{Token: token})
	if err != nil {
		logger.Error("oauth profile fetch failed", map[string]any{
			"provider": c.Param("provider"),
			"error":    err.Error(),
		})
		c.Redirect(http.StatusFound, middleware.LoginPath+"?error=oauth_failed")
		return
	}

	raw, err := json.Marshal(user)
	if err != nil {
		c.Redirect(http.StatusFound, middleware.LoginPath+"?error=oauth_failed")
		return
	}

	if _, err := sc.Login(ctx, raw, token, false); err != nil {
		c.Redirect(http.StatusFound, middleware.LoginPath+"?error=oauth_failed")
		return
	}

	metrics.Logins.WithLabelValues("oauth").Inc()
	logger.Info("oauth login", map[string]any{
		"provider": c.Param("provider"),
		"user_id":  user.ID,
	})

	c.Redirect(http.StatusFound, middleware.DashboardPath)
}
