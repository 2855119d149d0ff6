package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h Handler) {
	r.POST("/agent", h.Process)
}
