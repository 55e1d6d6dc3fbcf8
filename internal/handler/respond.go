package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mbsaloka/AutoEssayGrader/internal/backend"
)

// relayError converts a backend failure into the browser-facing error
// shape. Backend statuses pass through so the page can tell a 401 from
// a 404; anything else (network, decode) reads as a bad gateway. The
// message is always usable for display and never swallowed.
func relayError(c *gin.Context, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"detail": apiErr.Detail})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"detail": err.Error()})
}
