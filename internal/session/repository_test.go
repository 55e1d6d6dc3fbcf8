package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mbsaloka/AutoEssayGrader/internal/cookie"
	"github.com/mbsaloka/AutoEssayGrader/internal/kv"
)

type repoFixture struct {
	repo     *Repository
	jar      *cookie.Jar
	fallback *kv.MemoryStore
	recorder *httptest.ResponseRecorder
}

func newRepoFixture(t *testing.T, cookies ...*http.Cookie) *repoFixture {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()

	jar := cookie.NewJar(w, r)
	fallback := kv.NewMemoryStore()
	t.Cleanup(func() { fallback.Close() })

	return &repoFixture{
		repo:     NewRepository(jar, fallback, "dev1", false, ""),
		jar:      jar,
		fallback: fallback,
		recorder: w,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, rememberMe := range []bool{true, false} {
		f := newRepoFixture(t)
		ctx := context.Background()

		saved, err := f.repo.Save(ctx, json.RawMessage(`{"id":1,"fullname":"A"}`), "tok123", rememberMe)
		require.NoError(t, err)

		loaded := f.repo.Load(ctx)
		require.NotNil(t, loaded)
		require.Equal(t, saved, loaded)
	}
}

func TestLoadResyncsCookiesFromFallback(t *testing.T) {
	f := newRepoFixture(t)
	ctx := context.Background()

	// Fallback store has a session; the cookie store does not.
	require.NoError(t, f.fallback.Set(ctx, "device:dev1:user", `{"id":1}`, time.Hour))
	require.NoError(t, f.fallback.Set(ctx, "device:dev1:token", "tok123", time.Hour))
	require.NoError(t, f.fallback.Set(ctx, "device:dev1:loginTimestamp", "2026-08-01T00:00:00Z", time.Hour))

	loaded := f.repo.Load(ctx)
	require.NotNil(t, loaded)
	require.Equal(t, "tok123", loaded.Token)
	require.JSONEq(t, `{"id":1}`, string(loaded.User))

	// Cookies are re-materialized with the short TTL.
	byName := map[string]*http.Cookie{}
	for _, c := range f.recorder.Result().Cookies() {
		byName[c.Name] = c
	}
	for _, name := range []string{"user", "token", "loginTimestamp"} {
		require.Contains(t, byName, name)
		require.WithinDuration(t, time.Now().Add(ShortTTL), byName[name].Expires, time.Minute)
	}

	v, ok := f.jar.Get("token")
	require.True(t, ok)
	require.Equal(t, "tok123", v)
}

func TestLoadCorruptedUserYieldsNoSession(t *testing.T) {
	// Corrupt cookie copy.
	f := newRepoFixture(t,
		&http.Cookie{Name: "user", Value: "not-json"},
		&http.Cookie{Name: "token", Value: "tok123"},
	)
	require.Nil(t, f.repo.Load(context.Background()))

	// Corrupt fallback copy.
	f = newRepoFixture(t)
	ctx := context.Background()
	require.NoError(t, f.fallback.Set(ctx, "device:dev1:user", "{broken", time.Hour))
	require.NoError(t, f.fallback.Set(ctx, "device:dev1:token", "tok123", time.Hour))
	require.Nil(t, f.repo.Load(ctx))
}

func TestClearIsIdempotent(t *testing.T) {
	f := newRepoFixture(t)
	ctx := context.Background()

	_, err := f.repo.Save(ctx, json.RawMessage(`{"id":1}`), "tok123", false)
	require.NoError(t, err)

	require.NoError(t, f.repo.Clear(ctx))
	require.Nil(t, f.repo.Load(ctx))

	require.NoError(t, f.repo.Clear(ctx))
	require.Nil(t, f.repo.Load(ctx))

	_, ok, err := f.fallback.Get(ctx, "device:dev1:token")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTTLPolicy(t *testing.T) {
	longFixture := newRepoFixture(t)
	shortFixture := newRepoFixture(t)
	ctx := context.Background()

	_, err := longFixture.repo.Save(ctx, json.RawMessage(`{"id":1}`), "tok", true)
	require.NoError(t, err)
	_, err = shortFixture.repo.Save(ctx, json.RawMessage(`{"id":1}`), "tok", false)
	require.NoError(t, err)

	longCookies := longFixture.recorder.Result().Cookies()
	shortCookies := shortFixture.recorder.Result().Cookies()
	require.NotEmpty(t, longCookies)
	require.Len(t, shortCookies, len(longCookies))

	for i := range longCookies {
		require.WithinDuration(t, time.Now().Add(RememberTTL), longCookies[i].Expires, time.Minute)
		require.WithinDuration(t, time.Now().Add(ShortTTL), shortCookies[i].Expires, time.Minute)
		require.True(t, longCookies[i].Expires.After(shortCookies[i].Expires))
	}
}

func TestUpdateUserOnlyIsolation(t *testing.T) {
	f := newRepoFixture(t)
	ctx := context.Background()

	saved, err := f.repo.Save(ctx, json.RawMessage(`{"id":1,"fullname":"A"}`), "tok123", false)
	require.NoError(t, err)

	require.NoError(t, f.repo.UpdateUserOnly(ctx, json.RawMessage(`{"id":1,"fullname":"B"}`)))

	loaded := f.repo.Load(ctx)
	require.NotNil(t, loaded)
	require.JSONEq(t, `{"id":1,"fullname":"B"}`, string(loaded.User))
	require.Equal(t, saved.Token, loaded.Token)
	require.Equal(t, saved.LoginTimestamp, loaded.LoginTimestamp)
}

func TestTokenResolutionCookieFirst(t *testing.T) {
	f := newRepoFixture(t, &http.Cookie{Name: "token", Value: "cookie-tok"})
	ctx := context.Background()

	require.NoError(t, f.fallback.Set(ctx, "device:dev1:token", "fallback-tok", time.Hour))
	require.Equal(t, "cookie-tok", f.repo.Token(ctx))
}

func TestTokenResolutionFallsBack(t *testing.T) {
	f := newRepoFixture(t)
	ctx := context.Background()

	require.Empty(t, f.repo.Token(ctx))

	require.NoError(t, f.fallback.Set(ctx, "device:dev1:token", "fallback-tok", time.Hour))
	require.Equal(t, "fallback-tok", f.repo.Token(ctx))
}
