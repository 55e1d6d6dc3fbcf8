package session

import (
	"context"
	"encoding/json"
	"errors"
)

// State is the resolved authentication state for one request.
type State int

const (
	// StateInitializing means the stores have not been consulted yet.
	// It is entered exactly once per request and never re-entered.
	StateInitializing State = iota
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "initializing"
	}
}

// ErrNotAuthenticated is returned when a mutation requires a live
// session and there is none.
var ErrNotAuthenticated = errors.New("session: not authenticated")

// Context is the per-request session state machine. It resolves the
// persisted session at most once and guarantees that every mutation
// writes storage before in-memory state: a caller can never observe
// "authenticated" with unwritten stores, or the reverse.
type Context struct {
	repo *Repository

	state State
	sess  *Session
}

// NewContext wraps a repository in an unresolved state machine.
func NewContext(repo *Repository) *Context {
	return &Context{
		repo:  repo,
		state: StateInitializing,
	}
}

// Resolve loads the persisted session on first call and is a no-op
// afterwards. The initializing state cannot be re-entered.
func (c *Context) Resolve(ctx context.Context) State {
	if c.state != StateInitializing {
		return c.state
	}

	if sess := c.repo.Load(ctx); sess != nil {
		c.sess = sess
		c.state = StateAuthenticated
	} else {
		c.state = StateAnonymous
	}
	return c.state
}

// State returns the current state without resolving.
func (c *Context) State() State {
	return c.state
}

// IsAuthenticated resolves if needed and reports whether a session is
// live.
func (c *Context) IsAuthenticated(ctx context.Context) bool {
	return c.Resolve(ctx) == StateAuthenticated
}

// Session returns the resolved session, or nil when anonymous or
// unresolved.
func (c *Context) Session() *Session {
	return c.sess
}

// Login persists the session to both stores, then flips the in-memory
// state in the same operation. Valid from any resolved state and from
// an unresolved one (the OAuth callback logs in without a prior read).
func (c *Context) Login(ctx context.Context, user json.RawMessage, token string, rememberMe bool) (*Session, error) {
	sess, err := c.repo.Save(ctx, user, token, rememberMe)
	if err != nil {
		return nil, err
	}

	c.sess = sess
	c.state = StateAuthenticated
	return sess, nil
}

// Logout clears both stores, then flips the state. Idempotent.
func (c *Context) Logout(ctx context.Context) error {
	if err := c.repo.Clear(ctx); err != nil {
		return err
	}

	c.sess = nil
	c.state = StateAnonymous
	return nil
}

// UpdateUser replaces the profile blob in place. The token, login
// timestamp, and authenticated state are untouched.
func (c *Context) UpdateUser(ctx context.Context, user json.RawMessage) error {
	if c.Resolve(ctx) != StateAuthenticated {
		return ErrNotAuthenticated
	}

	if err := c.repo.UpdateUserOnly(ctx, user); err != nil {
		return err
	}

	c.sess.User = user
	return nil
}

// Repository exposes the underlying store orchestrator, mainly so the
// backend client can resolve tokens through it.
func (c *Context) Repository() *Repository {
	return c.repo
}
