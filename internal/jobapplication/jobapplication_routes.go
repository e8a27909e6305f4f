package jobapplication

import (
	"rikumates/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	apps := r.Group("/job_applications")
	apps.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		apps.GET("",
			middleware.RateLimitByUser(5, 20),
			handler.List,
		)

		apps.POST("",
			middleware.RateLimitByUser(1, 5),
			handler.Create,
		)

		apps.GET("/:application_id",
			middleware.RateLimitByUser(5, 20),
			handler.Get,
		)

		apps.PUT("/:application_id",
			middleware.RateLimitByUser(1, 5),
			handler.Update,
		)

		apps.DELETE("/:application_id",
			middleware.RateLimitByUser(0.5, 3),
			handler.Delete,
		)
	}
}
