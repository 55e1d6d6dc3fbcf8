package backend

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError is the normalized form of every non-2xx backend response.
// Detail carries the backend's human-readable message when the body is
// the usual {"detail": "..."} shape, otherwise a generic fallback.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return e.Detail
}

// IsUnauthorized reports whether the backend rejected the token.
func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		Status: resp.StatusCode,
		Detail: fmt.Sprintf("HTTP error! status: %d", resp.StatusCode),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}

	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		apiErr.Detail = parsed.Detail
	}
	return apiErr
}
