package settings

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, read, manage gin.HandlerFunc) {
	group := r.Group("/settings")
	{
		group.GET("/attendance", read, handler.GetAttendance)
		group.PUT("/attendance", manage, handler.UpdateAttendance)
	}
}
