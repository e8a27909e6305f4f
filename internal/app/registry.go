package app

import (
	"database/sql"

	"rikumates/internal/auth"
	"rikumates/internal/company"
	"rikumates/internal/event"
	"rikumates/internal/jobapplication"
	"rikumates/internal/messaging/kafka"
	"rikumates/internal/profile"
	"rikumates/internal/todo"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	profileRepo := profile.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	eventRepo := event.NewRepository(gormDB)
	todoRepo := todo.NewRepository(gormDB)
	jobAppRepo := jobapplication.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(gormDB, authRepo, profileRepo)
	profileService := profile.NewService(profileRepo, rdb)
	companyService := company.NewService(companyRepo)
	eventService := event.NewServiceWithOutbox(db, eventRepo, outboxRepo)
	todoService := todo.NewService(todoRepo)
	jobAppService := jobapplication.NewService(jobAppRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	profileHandler := profile.NewHandler(profileService)
	companyHandler := company.NewHandlerWithRedis(companyService, rdb)
	eventHandler := event.NewHandler(eventService)
	todoHandler := todo.NewHandler(todoService)
	jobAppHandler := jobapplication.NewHandler(jobAppService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		profile.RegisterRoutes(api, profileHandler)
		company.RegisterRoutes(api, companyHandler, jobAppHandler, rdb)
		event.RegisterRoutes(api, eventHandler)
		todo.RegisterRoutes(api, todoHandler)
		jobapplication.RegisterRoutes(api, jobAppHandler)
	}

	return nil
}
