package leavepolicy

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, read, manage gin.HandlerFunc) {
	policies := r.Group("/leave-policies")
	{
		policies.GET("", read, handler.GetAll)
		policies.GET("/:id", read, handler.GetByID)
		policies.POST("", manage, handler.Create)
		policies.PUT("/:id", manage, handler.Update)
		policies.DELETE("/:id", manage, handler.Delete)
		policies.POST("/:id/assign", manage, handler.Assign)
	}
}
