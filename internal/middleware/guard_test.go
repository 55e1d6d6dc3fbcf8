package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mbsaloka/AutoEssayGrader/internal/kv"
)

const kvTestTTL = time.Hour

func init() {
	gin.SetMode(gin.TestMode)
}

func newGuardRouter(t *testing.T, guard gin.HandlerFunc) (*gin.Engine, *kv.MemoryStore) {
	t.Helper()
	fallback := kv.NewMemoryStore()
	t.Cleanup(func() { fallback.Close() })

	r := gin.New()
	r.Use(WithSession(fallback, false, ""))
	r.GET("/protected", guard, func(c *gin.Context) {
		c.String(http.StatusOK, "content")
	})
	return r, fallback
}

func authCookies() []*http.Cookie {
	return []*http.Cookie{
		{Name: "user", Value: "%7B%22id%22%3A1%7D"},
		{Name: "token", Value: "tok123"},
	}
}

func doGet(r *gin.Engine, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	r, _ := newGuardRouter(t, RequireAuth())

	w := doGet(r)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, LoginPath, w.Header().Get("Location"))
	require.NotContains(t, w.Body.String(), "content")
}

func TestRequireAuthAdmitsAuthenticated(t *testing.T) {
	r, _ := newGuardRouter(t, RequireAuth())

	w := doGet(r, authCookies()...)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "content", w.Body.String())
}

func TestRequireAuthAdmitsViaFallbackStore(t *testing.T) {
	r, fallback := newGuardRouter(t, RequireAuth())

	// First visit establishes the device cookie.
	first := doGet(r)
	var device *http.Cookie
	for _, c := range first.Result().Cookies() {
		if c.Name == "gm_device" {
			device = c
		}
	}
	require.NotNil(t, device)

	// The fallback store holds a session for that device; cookies are
	// gone. The guard admits and the session cookies come back.
	ctx := t.Context()
	require.NoError(t, fallback.Set(ctx, "device:"+device.Value+":user", `{"id":1}`, kvTestTTL))
	require.NoError(t, fallback.Set(ctx, "device:"+device.Value+":token", "tok123", kvTestTTL))

	w := doGet(r, &http.Cookie{Name: "gm_device", Value: device.Value})
	require.Equal(t, http.StatusOK, w.Code)

	names := map[string]bool{}
	for _, c := range w.Result().Cookies() {
		names[c.Name] = true
	}
	require.True(t, names["token"])
	require.True(t, names["user"])
}

func TestRequireGuestRedirectsAuthenticated(t *testing.T) {
	r, _ := newGuardRouter(t, RequireGuest())

	w := doGet(r, authCookies()...)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, DashboardPath, w.Header().Get("Location"))
}

func TestRequireGuestAdmitsAnonymous(t *testing.T) {
	r, _ := newGuardRouter(t, RequireGuest())

	w := doGet(r)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "content", w.Body.String())
}

func TestGuardIssuesSingleRedirect(t *testing.T) {
	r, _ := newGuardRouter(t, RequireAuth())

	w := doGet(r)
	require.Len(t, w.Header().Values("Location"), 1)
}
