package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token(context.Context) string { return string(s) }

func TestErrorDetailNormalization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Not Found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Get(context.Background(), "/api/classes/99", &struct{}{}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
	require.Equal(t, "Not Found", err.Error())
}

func TestErrorUnparseableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Get(context.Background(), "/api/classes", &[]Class{}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "HTTP error! status: 500", err.Error())
}

func TestNoContentResolvesToZeroValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	var out struct{ Message string }
	require.NoError(t, c.Delete(context.Background(), "/api/classes/1", &out, nil))
	require.Empty(t, out.Message)
}

func TestBearerTokenFromSource(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL).WithTokenSource(staticTokens("tok123"))
	require.NoError(t, c.Get(context.Background(), "/api/auth/me", &User{}, nil))
	require.Equal(t, "Bearer tok123", got)
}

func TestExplicitTokenOverridesSource(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL).WithTokenSource(staticTokens("store-tok"))
	cfg := &RequestConfig{Token: "override-tok"}
	require.NoError(t, c.Get(context.Background(), "/api/auth/me", &User{}, cfg))
	require.Equal(t, "Bearer override-tok", got)
}

func TestNoTokenSendsBareRequest(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL).WithTokenSource(staticTokens(""))
	require.NoError(t, c.Get(context.Background(), "/api/auth/me", &User{}, nil))
	require.Empty(t, got)
}

func TestJSONBodyAndContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "a@b.c", req.Email)
		w.Write([]byte(`{"access_token":"tok","token_type":"bearer","user":{"id":1}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "secret123"})
	require.NoError(t, err)
	require.Equal(t, "tok", resp.AccessToken)
	require.Equal(t, 1, resp.User.ID)
}

func TestUploadFileMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		require.True(t, strings.HasPrefix(ct, "multipart/form-data; boundary="))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "essay.pdf", header.Filename)

		w.Write([]byte(`{"id":1,"filename":"essay.pdf","extracted_text":"hello"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.UploadOCR(context.Background(), "essay.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	require.Equal(t, "hello", result.ExtractedText)
}
