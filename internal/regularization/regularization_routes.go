package regularization

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, apply, read, approve gin.HandlerFunc) {
	regs := r.Group("/regularizations")
	{
		regs.POST("", apply, handler.Apply)
		regs.GET("", read, handler.List)
		regs.POST("/:id/approve", approve, handler.Approve)
		regs.POST("/:id/reject", approve, handler.Reject)
	}
}
