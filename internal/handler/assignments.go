package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mbsaloka/AutoEssayGrader/internal/backend"
)

func (h *Handler) CreateAssignment(c *gin.Context) {
	var req backend.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	assignment, err := h.client(c).CreateAssignment(c.Request.Context(), req)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

func (h *Handler) AssignmentDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	assignment, err := h.client(c).AssignmentDetail(c.Request.Context(), id)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

func (h *Handler) UpdateAssignment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req backend.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	assignment, err := h.client(c).UpdateAssignment(c.Request.Context(), id, req)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

func (h *Handler) DeleteAssignment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.client(c).DeleteAssignment(c.Request.Context(), id); err != nil {
		relayError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) SubmitAnswers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req backend.SubmitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	submission, err := h.client(c).SubmitAnswers(c.Request.Context(), id, req)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusCreated, submission)
}

// SubmitScan streams a scanned answer sheet through to the backend's
// OCR submission endpoint, same shape as the standalone OCR upload.
func (h *Handler) SubmitScan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "file is required"})
		return
	}
	defer file.Close()

	resp, err := h.client(c).SubmitScan(c.Request.Context(), id, header.Filename, file)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) MySubmission(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	submission, err := h.client(c).MySubmission(c.Request.Context(), id)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, submission)
}

func (h *Handler) AssignmentSubmissions(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	submissions, err := h.client(c).AssignmentSubmissions(c.Request.Context(), id)
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, submissions)
}
