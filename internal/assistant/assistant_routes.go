package assistant

import (
	"go-presensi/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc) {
	assistants := r.Group("/assistant")
	assistants.Use(auth)
	{
		// Panggilan AI mahal; batasi per user
		assistants.POST("/chat", middleware.RateLimitByUser(rate.Limit(0.5), 3), h.Chat)
	}
}
