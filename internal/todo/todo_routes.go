package todo

import (
	"rikumates/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	todos := r.Group("/todos")
	todos.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		todos.GET("",
			middleware.RateLimitByUser(5, 20),
			handler.List,
		)

		todos.POST("",
			middleware.RateLimitByUser(1, 5),
			handler.Create,
		)

		todos.GET("/:todo_id",
			middleware.RateLimitByUser(5, 20),
			handler.Get,
		)

		todos.PUT("/:todo_id",
			middleware.RateLimitByUser(1, 5),
			handler.Update,
		)

		todos.DELETE("/:todo_id",
			middleware.RateLimitByUser(0.5, 3),
			handler.Delete,
		)
	}
}
