package leave

import (
	"go-presensi/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client, auth gin.HandlerFunc) {
	leaves := r.Group("/leaves")
	leaves.Use(auth)
	{
		leaves.POST("", middleware.Idempotency(rdb), h.Submit)
	}
}
