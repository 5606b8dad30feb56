package attendance

import (
	"go-presensi/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client, auth gin.HandlerFunc) {
	attendances := r.Group("/attendances")
	attendances.Use(auth)
	{
		attendances.GET("", h.History)
		attendances.GET("/today", h.Today)
		attendances.POST("/clock-in", middleware.Idempotency(rdb), h.ClockIn)
		attendances.POST("/clock-out", middleware.Idempotency(rdb), h.ClockOut)
	}
}
