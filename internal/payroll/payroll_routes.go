package payroll

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts templates and runs. idempotent guards run creation
// against double submission.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, manage, read, idempotent gin.HandlerFunc) {
	templates := r.Group("/salary-templates")
	{
		templates.POST("", manage, handler.CreateTemplate)
		templates.GET("", read, handler.ListTemplates)
	}

	payroll := r.Group("/payroll")
	{
		payroll.POST("/runs", manage, idempotent, handler.Run)
		payroll.GET("/runs/:id", read, handler.GetRun)
		payroll.GET("/payslips/:id/pdf", read, handler.DownloadPayslip)
	}
}
