package holiday

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, read, manage gin.HandlerFunc) {
	holidays := r.Group("/holidays")
	{
		holidays.GET("", read, handler.GetAll)
		holidays.POST("", manage, handler.Create)
		holidays.DELETE("/:id", manage, handler.Delete)
	}
}
