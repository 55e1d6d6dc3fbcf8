package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mbsaloka/AutoEssayGrader/internal/backend"
)

// pathID parses a numeric path parameter. A non-numeric value gets a
// 400 before the backend is bothered.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid " + name})
		return 0, false
	}
	return id, true
}

func (h *Handler) CreateClass(c *gin.Context) {
	var req backend.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	class, err := h.client(c).CreateClass(c.Request.Context(), req)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusCreated, class)
}

func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.client(c).ListClasses(c.Request.Context())
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *Handler) SearchClasses(c *gin.Context) {
	classes, err := h.client(c).SearchClasses(c.Request.Context(), c.Query("q"))
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *Handler) ClassDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.client(c).ClassDetail(c.Request.Context(), id)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) UpdateClass(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req backend.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	class, err := h.client(c).UpdateClass(c.Request.Context(), id, req)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *Handler) DeleteClass(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.client(c).DeleteClass(c.Request.Context(), id); err != nil {
		relayError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) JoinClass(c *gin.Context) {
	var req backend.JoinClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	resp, err := h.client(c).JoinClass(c.Request.Context(), req)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) InviteCode(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := h.client(c).InviteCode(c.Request.Context(), id)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RemoveParticipant(c *gin.Context) {
	classID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.client(c).RemoveParticipant(c.Request.Context(), classID, userID); err != nil {
		relayError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ClassAssignments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	assignments, err := h.client(c).ClassAssignments(c.Request.Context(), id)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}
