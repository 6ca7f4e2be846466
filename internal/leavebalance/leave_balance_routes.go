package leavebalance

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, readOwn, read gin.HandlerFunc) {
	balances := r.Group("/leave-balances")
	{
		balances.GET("/me", readOwn, handler.Mine)
		balances.GET("/:employeeId", read, handler.ForEmployee)
	}
}
