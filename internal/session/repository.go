package session

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mbsaloka/AutoEssayGrader/internal/cookie"
	"github.com/mbsaloka/AutoEssayGrader/internal/kv"
	"github.com/mbsaloka/AutoEssayGrader/internal/logger"
)

// Repository persists sessions across the cookie store and the fallback
// store for one request. The cookie store is authoritative for reads;
// the fallback store is the durability backstop, keyed by the browser's
// device identifier.
type Repository struct {
	jar      *cookie.Jar
	fallback kv.Store
	deviceID string

	secure bool
	domain string
}

// NewRepository binds a repository to one request's cookie jar and the
// shared fallback store.
func NewRepository(jar *cookie.Jar, fallback kv.Store, deviceID string, secure bool, domain string) *Repository {
	return &Repository{
		jar:      jar,
		fallback: fallback,
		deviceID: deviceID,
		secure:   secure,
		domain:   domain,
	}
}

func (r *Repository) fallbackKey(name string) string {
	return "device:" + r.deviceID + ":" + name
}

func (r *Repository) cookieOpts(ttl time.Duration) cookie.Options {
	return cookie.Options{
		TTL:      ttl,
		Domain:   r.domain,
		Secure:   r.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Load reads the persisted session. Cookies are tried first; when they
// are gone but the fallback store still has a copy, the cookies are
// re-materialized with a short TTL before returning. Malformed data in
// either store degrades to "no session" rather than an error.
func (r *Repository) Load(ctx context.Context) *Session {
	user, userOK := r.jar.Get(CookieUser)
	token, tokenOK := r.jar.Get(CookieToken)
	timestamp, _ := r.jar.Get(CookieLoginTimestamp)

	if userOK && tokenOK {
		if !json.Valid([]byte(user)) {
			return nil
		}
		return &Session{
			User:           json.RawMessage(user),
			Token:          token,
			LoginTimestamp: timestamp,
		}
	}

	user, userOK = r.fallbackGet(ctx, CookieUser)
	token, tokenOK = r.fallbackGet(ctx, CookieToken)
	timestamp, _ = r.fallbackGet(ctx, CookieLoginTimestamp)

	if !userOK || !tokenOK {
		return nil
	}
	if !json.Valid([]byte(user)) {
		return nil
	}

	// Resync: re-materialize the cookies so the cookie store is
	// authoritative again for the rest of this cycle.
	opts := r.cookieOpts(ShortTTL)
	r.jar.Set(CookieUser, user, opts)
	r.jar.Set(CookieToken, token, opts)
	if timestamp != "" {
		r.jar.Set(CookieLoginTimestamp, timestamp, opts)
	}

	return &Session{
		User:           json.RawMessage(user),
		Token:          token,
		LoginTimestamp: timestamp,
	}
}

// Save writes a fresh session to both stores with the same TTL and
// returns it. The login timestamp is stamped here.
func (r *Repository) Save(ctx context.Context, user json.RawMessage, token string, rememberMe bool) (*Session, error) {
	ttl := ShortTTL
	if rememberMe {
		ttl = RememberTTL
	}

	sess := &Session{
		User:           user,
		Token:          token,
		LoginTimestamp: time.Now().UTC().Format(time.RFC3339),
	}

	opts := r.cookieOpts(ttl)
	r.jar.Set(CookieUser, string(sess.User), opts)
	r.jar.Set(CookieToken, sess.Token, opts)
	r.jar.Set(CookieLoginTimestamp, sess.LoginTimestamp, opts)

	if err := r.fallbackSet(ctx, CookieUser, string(sess.User), ttl); err != nil {
		return nil, err
	}
	if err := r.fallbackSet(ctx, CookieToken, sess.Token, ttl); err != nil {
		return nil, err
	}
	if err := r.fallbackSet(ctx, CookieLoginTimestamp, sess.LoginTimestamp, ttl); err != nil {
		return nil, err
	}

	return sess, nil
}

// Clear removes the session from both stores. Clearing an absent
// session is a no-op.
func (r *Repository) Clear(ctx context.Context) error {
	opts := r.cookieOpts(0)
	r.jar.Delete(CookieUser, opts)
	r.jar.Delete(CookieToken, opts)
	r.jar.Delete(CookieLoginTimestamp, opts)

	for _, name := range []string{CookieUser, CookieToken, CookieLoginTimestamp} {
		if err := r.fallback.Delete(ctx, r.fallbackKey(name)); err != nil {
			return err
		}
	}
	return nil
}

// UpdateUserOnly replaces the profile blob in both stores with a fixed
// short TTL, leaving the token and login timestamp untouched.
func (r *Repository) UpdateUserOnly(ctx context.Context, user json.RawMessage) error {
	r.jar.Set(CookieUser, string(user), r.cookieOpts(ShortTTL))
	return r.fallbackSet(ctx, CookieUser, string(user), ShortTTL)
}

// Token resolves the bearer token for outgoing backend calls: cookie
// first, fallback store second, empty when signed out.
func (r *Repository) Token(ctx context.Context) string {
	if token, ok := r.jar.Get(CookieToken); ok && token != "" {
		return token
	}
	token, _ := r.fallbackGet(ctx, CookieToken)
	return token
}

func (r *Repository) fallbackGet(ctx context.Context, name string) (string, bool) {
	v, ok, err := r.fallback.Get(ctx, r.fallbackKey(name))
	if err != nil {
		// A broken backstop reads as an absent session; it must never
		// take the page down.
		logger.Warn("fallback store read failed", map[string]any{
			"key":   name,
			"error": err.Error(),
		})
		return "", false
	}
	return v, ok
}

func (r *Repository) fallbackSet(ctx context.Context, name, value string, ttl time.Duration) error {
	return r.fallback.Set(ctx, r.fallbackKey(name), value, ttl)
}
