package leave

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the leave endpoints. idempotent wraps apply so a
// retried submission replays the first response.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, apply, read, approve, idempotent gin.HandlerFunc) {
	leaves := r.Group("/leaves")
	{
		leaves.POST("", apply, idempotent, handler.Apply)
		leaves.GET("", read, handler.List)
		leaves.GET("/:id", read, handler.GetByID)
		leaves.PUT("/:id", apply, handler.Edit)
		leaves.POST("/:id/cancel", apply, handler.Cancel)
		leaves.POST("/:id/approve", approve, handler.Approve)
		leaves.POST("/:id/reject", approve, handler.Reject)
	}
}
