package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mbsaloka/AutoEssayGrader/internal/backend"
)

func (h *Handler) CurrentUser(c *gin.Context) {
	user, err := h.client(c).CurrentUser(c.Request.Context(), nil)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile pushes the edit to the backend and then refreshes the
// persisted user snapshot. The token and login timestamp are left
// untouched; only the user payload is rewritten.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req backend.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.client(c).UpdateProfile(ctx, req)
	if err != nil {
		relayError(c, err)
		return
	}

	raw, err := json.Marshal(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to persist session"})
		return
	}
	if err := sessionOf(c).UpdateUser(ctx, raw); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to persist session"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) UploadProfilePhoto(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "file is required"})
		return
	}
	defer file.Close()

	resp, err := h.client(c).UploadProfilePhoto(c.Request.Context(), header.Filename, file)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req backend.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	resp, err := h.client(c).ChangePassword(c.Request.Context(), req)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
