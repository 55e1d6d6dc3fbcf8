package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) DashboardStats(c *gin.Context) {
	stats, err := h.client(c).DashboardStats(c.Request.Context())
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) RecentActivity(c *gin.Context) {
	activities, err := h.client(c).RecentActivity(c.Request.Context())
	if err != nil {
		relayError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}
