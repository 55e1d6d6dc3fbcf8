// Package handler exposes the gateway's browser-facing routes: the
// authentication flows and thin proxies for the grading backend's
// feature surface.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mbsaloka/AutoEssayGrader/internal/backend"
	"github.com/mbsaloka/AutoEssayGrader/internal/middleware"
	"github.com/mbsaloka/AutoEssayGrader/internal/session"
)

type Handler struct {
	api    *backend.Client
	webDir string
}

func NewHandler(api *backend.Client, webDir string) *Handler {
	return &Handler{
		api:    api,
		webDir: webDir,
	}
}

// api returns the backend client bound to this request's token
// resolution (cookie first, fallback store second).
func (h *Handler) client(c *gin.Context) *backend.Client {
	return h.api.WithTokenSource(middleware.Session(c).Repository())
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	// Guest-only pages and flows.
	guest := r.Group("/")
	guest.Use(middleware.RequireGuest())
	guest.GET(middleware.LoginPath, h.LoginPage)
	guest.GET("/register", h.RegisterPage)

	r.POST("/auth/login", h.Login)
	r.POST("/auth/register", h.Register)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/oauth/:provider", h.OAuthStart)
	r.GET("/auth/callback/:provider", h.OAuthCallback)

	// Authenticated pages.
	pages := r.Group("/")
	pages.Use(middleware.RequireAuth())
	pages.GET(middleware.DashboardPath, h.DashboardPage)

	// Authenticated API proxy.
	api := r.Group("/api")
	api.Use(middleware.RequireAuth())

	api.GET("/me", h.CurrentUser)
	api.PUT("/profile", h.UpdateProfile)
	api.POST("/profile/password", h.ChangePassword)
	api.POST("/profile/photo", h.UploadProfilePhoto)

	api.GET("/dashboard/stats", h.DashboardStats)
	api.GET("/dashboard/recent-activity", h.RecentActivity)

	api.POST("/classes", h.CreateClass)
	api.GET("/classes", h.ListClasses)
	api.GET("/classes/search", h.SearchClasses)
	api.GET("/classes/:id", h.ClassDetail)
	api.PUT("/classes/:id", h.UpdateClass)
	api.DELETE("/classes/:id", h.DeleteClass)
	api.POST("/classes/join", h.JoinClass)
	api.POST("/classes/:id/invite", h.InviteCode)
	api.DELETE("/classes/:id/participants/:userId", h.RemoveParticipant)
	api.GET("/classes/:id/assignments", h.ClassAssignments)

	api.POST("/assignments", h.CreateAssignment)
	api.GET("/assignments/:id", h.AssignmentDetail)
	api.PUT("/assignments/:id", h.UpdateAssignment)
	api.DELETE("/assignments/:id", h.DeleteAssignment)
	api.POST("/assignments/:id/submit", h.SubmitAnswers)
	api.POST("/assignments/:id/submit-scan", h.SubmitScan)
	api.GET("/assignments/:id/my-submission", h.MySubmission)
	api.GET("/assignments/:id/submissions", h.AssignmentSubmissions)

	api.POST("/grading/submissions/:id/grade", h.GradeSubmission)
	api.POST("/grading/submissions/:id/auto-grade", h.AutoGradeSubmission)
	api.POST("/grading/assignments/:id/auto-grade-all", h.AutoGradeAll)
	api.GET("/grading/assignments/:id/statistics", h.AssignmentStatistics)
	api.GET("/grading/assignments/:id/grades", h.AssignmentGrades)
	api.GET("/grading/students/:id/grades", h.StudentGrades)
	api.GET("/grading/submissions/:id/details", h.SubmissionDetails)
	api.DELETE("/grading/submissions/:id/grade", h.DeleteGrade)

	api.POST("/ocr/upload", h.UploadOCR)
	api.GET("/ocr/result", h.LatestOCRResult)
}

// sessionOf is a shorthand for the request's session state machine.
func sessionOf(c *gin.Context) *session.Context {
	return middleware.Session(c)
}
