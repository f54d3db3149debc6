package routes

import (
	requestsapi "design-request-app/internal/api/requests"
	"design-request-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *requestsapi.Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Submission is open to any internal requester; the form DTO sanitizes
	// its own multipart fields.
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/requests", h.Submit)

	// Dashboard reads
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/requests", h.List)
	auth.GET("/requests/:id", h.Get)

	// Reviewer actions
	reviewer := auth.Group("/")
	reviewer.Use(middleware.RequireRole("reviewer"), middleware.SanitizeAndCleanInputMiddleware())
	reviewer.PATCH("/requests/:id/status", h.UpdateStatus)
	reviewer.DELETE("/requests/:id", h.Delete)
	reviewer.POST("/requests/:id/sync", h.Resync)
}
