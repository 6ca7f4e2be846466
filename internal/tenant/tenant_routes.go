package tenant

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, manage gin.HandlerFunc) {
	tenants := r.Group("/tenants", manage)
	{
		tenants.POST("", handler.Create)
		tenants.GET("", handler.GetAll)
		tenants.GET("/:id", handler.GetByID)
		tenants.PATCH("/:id/status", handler.UpdateStatus)
		tenants.PUT("/:id/settings", handler.UpdateSettings)
	}
}
