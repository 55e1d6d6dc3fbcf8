package handler

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

func (h *Handler) LoginPage(c *gin.Context) {
	h.page(c, "login.html")
}

func (h *Handler) RegisterPage(c *gin.Context) {
	h.page(c, "register.html")
}

func (h *Handler) DashboardPage(c *gin.Context) {
	h.page(c, "dashboard.html")
}

func (h *Handler) page(c *gin.Context, name string) {
	if h.webDir == "" {
		c.Status(http.StatusOK)
		return
	}
	c.File(filepath.Join(h.webDir, name))
}
