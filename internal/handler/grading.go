package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mbsaloka/AutoEssayGrader/internal/backend"
)

func (h *Handler) GradeSubmission(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req backend.GradeSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	grade, err := h.client(c).GradeSubmission(c.Request.Context(), id, req)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, grade)
}

func (h *Handler) AutoGradeSubmission(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := h.client(c).AutoGradeSubmission(c.Request.Context(), id)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AutoGradeAll(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := h.client(c).AutoGradeAll(c.Request.Context(), id)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AssignmentStatistics(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	stats, err := h.client(c).AssignmentStatistics(c.Request.Context(), id)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) AssignmentGrades(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	grades, err := h.client(c).AssignmentGrades(c.Request.Context(), id)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, grades)
}

func (h *Handler) StudentGrades(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	grades, err := h.client(c).StudentGrades(c.Request.Context(), id)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, grades)
}

func (h *Handler) SubmissionDetails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.client(c).SubmissionDetails(c.Request.Context(), id)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) DeleteGrade(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.client(c).DeleteGrade(c.Request.Context(), id); err != nil {
		relayError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadOCR streams the scanned answer sheet straight through to the
// backend's OCR endpoint without buffering it on disk.
func (h *Handler) UploadOCR(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "file is required"})
		return
	}
	defer file.Close()

	result, err := h.client(c).UploadOCR(c.Request.Context(), header.Filename, file)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) LatestOCRResult(c *gin.Context) {
	result, err := h.client(c).LatestOCRResult(c.Request.Context())
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
