package attendance

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the attendance endpoints. throttle runs ahead of the
// punch permission check.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, throttle, punch, readOwn, manage, importFile gin.HandlerFunc) {
	attendance := r.Group("/attendance")
	{
		attendance.POST("/punch", throttle, punch, handler.Punch)
		attendance.GET("/today", readOwn, handler.Today)
		attendance.GET("", readOwn, handler.List)
		attendance.PUT("/:id/override", manage, handler.Override)
		attendance.POST("/import", importFile, handler.Import)
	}
}
