package app

import (
	"database/sql"

	"go-presensi/internal/activity"
	"go-presensi/internal/assistant"
	"go-presensi/internal/attendance"
	"go-presensi/internal/config"
	"go-presensi/internal/geocode"
	"go-presensi/internal/leave"
	"go-presensi/internal/messaging/kafka"
	"go-presensi/internal/middleware"
	"go-presensi/internal/profile"
	"go-presensi/internal/slik"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.App,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	loc := cfg.Location()

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	slikRepo := slik.NewRepository(gormDB)
	profileRepo := profile.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- External clients ---
	geocodeClient := geocode.NewClient(cfg.GeocodeBaseURL, cfg.GeocodeTimeout)
	assistantClient := assistant.New(
		cfg.AssistantURL,
		cfg.AssistantAPIKey,
		cfg.AssistantModel,
		cfg.AssistantAPIKey == "",
	)

	// --- Services ---
	attendanceService := attendance.NewServiceWithOutbox(db, attendanceRepo, outboxRepo, geocodeClient, loc)
	leaveService := leave.NewService(db, attendanceRepo, outboxRepo, loc)
	slikService := slik.NewService(slikRepo)
	activityService := activity.NewService(attendanceRepo, slikRepo)
	profileService := profile.NewService(profileRepo, rdb)
	assistantService := assistant.NewService(assistantClient, activityService)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandlerWithRedis(attendanceService, rdb)
	leaveHandler := leave.NewHandlerWithRedis(leaveService, rdb)
	slikHandler := slik.NewHandlerWithRedis(slikService, rdb)
	activityHandler := activity.NewHandler(activityService)
	profileHandler := profile.NewHandler(profileService)
	assistantHandler := assistant.NewHandler(assistantService)

	// --- Routes Registration ---
	auth := middleware.AuthMiddleware(cfg.JWTSecret)

	api := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(api, attendanceHandler, rdb, auth)
		leave.RegisterRoutes(api, leaveHandler, rdb, auth)
		slik.RegisterRoutes(api, slikHandler, rdb, auth)
		activity.RegisterRoutes(api, activityHandler, auth)
		profile.RegisterRoutes(api, profileHandler, auth)
		assistant.RegisterRoutes(api, assistantHandler, auth)
	}

	return nil
}
