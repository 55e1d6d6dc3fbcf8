package session

import (
	"net/http"
	"time"

	"github.com/mbsaloka/AutoEssayGrader/internal/cookie"
	"github.com/mbsaloka/AutoEssayGrader/internal/utils"
)

const (
	deviceCookieName = "gm_device"

	// Browsers cap cookie lifetimes at 400 days; asking for more is
	// silently clamped anyway.
	deviceCookieTTL = 400 * 24 * time.Hour
)

// EnsureDeviceID returns the stable per-browser identifier that keys
// the fallback store, minting and issuing one when absent. The device
// cookie outlives the session cookies on purpose: it is what lets a
// returning browser find its fallback copy after the short-lived
// session cookies expired.
func EnsureDeviceID(jar *cookie.Jar, secure bool, domain string) string {
	if id, ok := jar.Get(deviceCookieName); ok && id != "" {
		return id
	}

	id := utils.RandomString(32)
	jar.Set(deviceCookieName, id, cookie.Options{
		TTL:      deviceCookieTTL,
		Domain:   domain,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
