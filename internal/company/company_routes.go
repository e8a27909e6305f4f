package company

import (
	"rikumates/internal/jobapplication"
	"rikumates/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	jobAppHandler *jobapplication.Handler,
	rdb *redis.Client,
) {
	companies := r.Group("/companies")
	companies.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		companies.GET("",
			middleware.RateLimitByUser(5, 20),
			handler.List,
		)

		companies.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		companies.GET("/:company_id",
			middleware.RateLimitByUser(5, 20),
			handler.Get,
		)

		companies.PUT("/:company_id",
			middleware.RateLimitByUser(1, 5),
			handler.Update,
		)

		companies.DELETE("/:company_id",
			middleware.RateLimitByUser(0.5, 3),
			handler.Delete,
		)

		// Applications nested under the company they belong to.
		companies.GET("/:company_id/job_applications",
			middleware.RateLimitByUser(5, 20),
			jobAppHandler.ListByCompany,
		)

		companies.POST("/:company_id/job_applications",
			middleware.RateLimitByUser(1, 5),
			jobAppHandler.CreateForCompany,
		)
	}
}
