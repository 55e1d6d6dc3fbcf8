// Package cookie implements the gateway's cookie store: a per-request
// jar over the incoming request and outgoing response. Values are
// percent-encoded on write and decoded on read; a value that fails to
// decode reads as absent rather than surfacing an error.
package cookie

import (
	"net/http"
	"net/url"
	"time"
)

// DefaultTTL is applied when Options.TTL is zero.
const DefaultTTL = 7 * 24 * time.Hour

// Options defines how cookies are issued.
type Options struct {
	TTL      time.Duration // negative TTL expires the cookie immediately
	Path     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

// normalize applies safe defaults without breaking callers.
func (o Options) normalize() Options {
	if o.TTL == 0 {
		o.TTL = DefaultTTL
	}
	if o.Path == "" {
		o.Path = "/"
	}
	if o.SameSite == 0 {
		o.SameSite = http.SameSiteLaxMode
	}
	return o
}

// Jar gives read/write access to the browser's cookies for one
// request/response cycle. Writes are visible to subsequent reads in the
// same cycle, mirroring what the browser's jar would hold after the
// response is applied.
type Jar struct {
	w       http.ResponseWriter
	r       *http.Request
	pending map[string]*string // name -> value, nil means deleted
}

// NewJar creates a jar bound to one request/response pair.
func NewJar(w http.ResponseWriter, r *http.Request) *Jar {
	return &Jar{
		w:       w,
		r:       r,
		pending: make(map[string]*string),
	}
}

// Set issues a cookie to the client.
func (j *Jar) Set(name, value string, opts Options) {
	opts = opts.normalize()

	c := &http.Cookie{
		Name:     url.PathEscape(name),
		Value:    url.PathEscape(value),
		Path:     opts.Path,
		Domain:   opts.Domain,
		Expires:  time.Now().Add(opts.TTL),
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	}
	http.SetCookie(j.w, c)

	if opts.TTL < 0 {
		j.pending[name] = nil
		return
	}
	v := value
	j.pending[name] = &v
}

// Get returns the cookie value, or "" with ok=false if the cookie is
// absent or its value cannot be decoded.
func (j *Jar) Get(name string) (string, bool) {
	if v, written := j.pending[name]; written {
		if v == nil {
			return "", false
		}
		return *v, true
	}

	c, err := j.r.Cookie(url.PathEscape(name))
	if err != nil {
		return "", false
	}
	decoded, err := url.PathUnescape(c.Value)
	if err != nil {
		return "", false
	}
	return decoded, true
}

// Has reports whether the named cookie is present.
func (j *Jar) Has(name string) bool {
	_, ok := j.Get(name)
	return ok
}

// Delete removes the cookie by issuing it with an expiry in the past.
// Kept as a Set so external consumers of the same cookies observe the
// exact same write shape.
func (j *Jar) Delete(name string, opts Options) {
	opts.TTL = -24 * time.Hour
	j.Set(name, "", opts)
}

// All returns every readable cookie as a name -> value map, including
// same-cycle writes. Undecodable values are skipped.
func (j *Jar) All() map[string]string {
	out := make(map[string]string)
	for _, c := range j.r.Cookies() {
		name, err := url.PathUnescape(c.Name)
		if err != nil {
			continue
		}
		value, err := url.PathUnescape(c.Value)
		if err != nil {
			continue
		}
		out[name] = value
	}
	for name, v := range j.pending {
		if v == nil {
			delete(out, name)
			continue
		}
		out[name] = *v
	}
	return out
}
