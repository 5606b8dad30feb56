package profile

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc) {
	profiles := r.Group("/profiles")
	profiles.Use(auth)
	{
		profiles.GET("/me", h.Me)
		profiles.PATCH("/me", h.UpdateMe)
	}
}
