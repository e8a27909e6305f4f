package event

import (
	"rikumates/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	events := r.Group("/events")
	events.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		events.GET("",
			middleware.RateLimitByUser(5, 20),
			handler.List,
		)

		events.POST("",
			middleware.RateLimitByUser(1, 5),
			handler.Create,
		)

		events.GET("/:event_id",
			middleware.RateLimitByUser(5, 20),
			handler.Get,
		)

		events.PUT("/:event_id",
			middleware.RateLimitByUser(1, 5),
			handler.Update,
		)

		events.DELETE("/:event_id",
			middleware.RateLimitByUser(0.5, 3),
			handler.Delete,
		)
	}
}
