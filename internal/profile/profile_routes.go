package profile

import (
	"rikumates/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	profiles := r.Group("/profiles")
	profiles.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		profiles.GET("/:profile_id", middleware.RateLimitByUser(2, 10), handler.Get)
		profiles.PUT("/:profile_id", middleware.RateLimitByUser(0.5, 3), handler.Update)
		profiles.DELETE("/:profile_id", middleware.RateLimitByUser(0.1, 1), handler.Delete)
	}
}
