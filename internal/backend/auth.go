package backend

import (
	"context"
	"fmt"
	"io"
)

// Login exchanges credentials for a bearer token and profile.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.Post(ctx, "/api/auth/login", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account. Registration does not authenticate; the
// caller is expected to send the visitor to the login page afterwards.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.Post(ctx, "/api/auth/register", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUser fetches the profile for the resolved token. An explicit
// token override is how the OAuth callback identifies the visitor
// before any session exists.
func (c *Client) CurrentUser(ctx context.Context, cfg *RequestConfig) (*User, error) {
	var out User
	if err := c.Get(ctx, "/api/auth/me", &out, cfg); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the token server-side.
func (c *Client) Logout(ctx context.Context, token string) error {
	var out MessageResponse
	return c.Post(ctx, "/api/auth/logout", map[string]string{"token": token}, &out, nil)
}

// AuthorizationURL asks the backend for the provider's OAuth consent
// URL. Supported providers: google, github.
func (c *Client) AuthorizationURL(ctx context.Context, provider string) (string, error) {
	var out AuthorizationURLResponse
	endpoint := fmt.Sprintf("/api/auth/oauth/%s", provider)
	if err := c.Get(ctx, endpoint, &out, nil); err != nil {
		return "", err
	}
	return out.AuthorizationURL, nil
}

// UpdateProfile updates the authenticated user's profile and returns
// the fresh record.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	var out User
	if err := c.Put(ctx, "/api/users/me", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadProfilePhoto replaces the authenticated user's profile
// picture and returns the URL of the stored photo.
func (c *Client) UploadProfilePhoto(ctx context.Context, fileName string, file io.Reader) (*PhotoUploadResponse, error) {
	var out PhotoUploadResponse
	if err := c.UploadFile(ctx, "/api/profile/me/upload-photo", "file", fileName, file, nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword rotates the password for the authenticated user.
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.Post(ctx, "/api/users/me/password", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}
