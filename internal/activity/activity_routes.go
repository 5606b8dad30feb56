package activity

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc) {
	activities := r.Group("/activities")
	activities.Use(auth)
	{
		activities.GET("", h.Feed)
	}
}
