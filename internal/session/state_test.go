package session

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolveAnonymous(t *testing.T) {
	f := newRepoFixture(t)
	sc := NewContext(f.repo)

	require.Equal(t, StateInitializing, sc.State())
	require.Equal(t, StateAnonymous, sc.Resolve(context.Background()))
	require.Nil(t, sc.Session())
}

func TestResolveAuthenticated(t *testing.T) {
	f := newRepoFixture(t,
		&http.Cookie{Name: "user", Value: "%7B%22id%22%3A1%7D"},
		&http.Cookie{Name: "token", Value: "tok123"},
	)
	sc := NewContext(f.repo)

	require.Equal(t, StateAuthenticated, sc.Resolve(context.Background()))
	require.NotNil(t, sc.Session())
	require.Equal(t, "tok123", sc.Session().Token)
}

func TestResolveHappensOnce(t *testing.T) {
	f := newRepoFixture(t)
	sc := NewContext(f.repo)
	ctx := context.Background()

	require.Equal(t, StateAnonymous, sc.Resolve(ctx))

	// A session appearing in storage after resolution does not flip
	// the resolved state back.
	_, err := f.repo.Save(ctx, json.RawMessage(`{"id":1}`), "tok", false)
	require.NoError(t, err)
	require.Equal(t, StateAnonymous, sc.Resolve(ctx))
}

func TestLoginLogoutScenario(t *testing.T) {
	f := newRepoFixture(t)
	sc := NewContext(f.repo)
	ctx := context.Background()

	_, err := sc.Login(ctx, json.RawMessage(`{"id":1,"fullname":"A"}`), "tok123", false)
	require.NoError(t, err)
	require.True(t, sc.IsAuthenticated(ctx))

	// Cookie token=tok123 with roughly one hour of life.
	var tokenCookie *http.Cookie
	for _, c := range f.recorder.Result().Cookies() {
		if c.Name == "token" && c.Value != "" {
			tokenCookie = c
		}
	}
	require.NotNil(t, tokenCookie)
	require.Equal(t, "tok123", tokenCookie.Value)
	require.WithinDuration(t, time.Now().Add(ShortTTL), tokenCookie.Expires, time.Minute)

	require.NoError(t, sc.Logout(ctx))
	require.False(t, sc.IsAuthenticated(ctx))
	require.False(t, f.jar.Has("token"))
	require.Nil(t, f.repo.Load(ctx))
}

func TestLogoutIdempotent(t *testing.T) {
	f := newRepoFixture(t)
	sc := NewContext(f.repo)
	ctx := context.Background()

	require.NoError(t, sc.Logout(ctx))
	require.NoError(t, sc.Logout(ctx))
	require.Equal(t, StateAnonymous, sc.State())
}

func TestUpdateUserRequiresSession(t *testing.T) {
	f := newRepoFixture(t)
	sc := NewContext(f.repo)

	err := sc.UpdateUser(context.Background(), json.RawMessage(`{"id":1}`))
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestUpdateUserKeepsTokenAndState(t *testing.T) {
	f := newRepoFixture(t)
	sc := NewContext(f.repo)
	ctx := context.Background()

	saved, err := sc.Login(ctx, json.RawMessage(`{"id":1,"fullname":"A"}`), "tok123", false)
	require.NoError(t, err)

	require.NoError(t, sc.UpdateUser(ctx, json.RawMessage(`{"id":1,"fullname":"B"}`)))
	require.True(t, sc.IsAuthenticated(ctx))
	require.Equal(t, saved.Token, sc.Session().Token)
	require.Equal(t, saved.LoginTimestamp, sc.Session().LoginTimestamp)
	require.JSONEq(t, `{"id":1,"fullname":"B"}`, string(sc.Session().User))
}

func TestLoginWithoutPriorResolve(t *testing.T) {
	// The OAuth callback path logs in directly; the state machine must
	// accept that from the unresolved state.
	f := newRepoFixture(t)
	sc := NewContext(f.repo)
	ctx := context.Background()

	_, err := sc.Login(ctx, json.RawMessage(`{"id":2}`), "oauth-tok", false)
	require.NoError(t, err)
	require.Equal(t, StateAuthenticated, sc.State())
}
