package slik

import (
	"go-presensi/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client, auth gin.HandlerFunc) {
	sliks := r.Group("/sliks")
	sliks.Use(auth)
	{
		sliks.GET("", h.List)
		sliks.POST("", middleware.Idempotency(rdb), h.Create)
	}
}
