package notification

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, read gin.HandlerFunc) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", read, handler.ListMine)
		notifications.POST("/:id/read", read, handler.MarkRead)
	}
}
