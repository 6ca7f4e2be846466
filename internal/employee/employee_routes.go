package employee

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, read, manage gin.HandlerFunc) {
	employees := r.Group("/employees")
	{
		employees.GET("", read, handler.GetAll)
		employees.GET("/:id", read, handler.GetByID)
		employees.GET("/:id/reportees", read, handler.Reportees)

		employees.POST("", manage, handler.Create)
		employees.PUT("/:id", manage, handler.Update)
		employees.POST("/:id/activate", manage, handler.Activate)
		employees.PUT("/:id/manager", manage, handler.AssignManager)
		employees.DELETE("/:id", manage, handler.Delete)
	}
}
