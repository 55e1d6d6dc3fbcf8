// Package session owns the persisted authentication session: the
// user profile blob, the backend bearer token, and the login timestamp.
// It is the only place that orchestrates writes across the cookie store
// and the fallback store, so the two can never drift apart for longer
// than one load cycle.
package session

import (
	"encoding/json"
	"time"
)

// Cookie names are part of the external contract; other consumers read
// the same cookies and the names must not change.
const (
	CookieUser           = "user"
	CookieToken          = "token"
	CookieLoginTimestamp = "loginTimestamp"
)

const (
	// RememberTTL applies when the visitor asked to stay signed in.
	RememberTTL = 7 * 24 * time.Hour

	// ShortTTL applies to plain logins, to the cookie resync performed
	// on load, and to profile-only updates. Profile updates must not
	// extend or shrink the credential's own lifetime.
	ShortTTL = time.Hour
)

// Session is the authenticated identity and its persistence envelope.
// The user profile is an opaque serializable blob; the token is
// forwarded verbatim to the backend.
type Session struct {
	User           json.RawMessage `json:"user"`
	Token          string          `json:"token"`
	LoginTimestamp string          `json:"login_timestamp"` // RFC 3339
}
