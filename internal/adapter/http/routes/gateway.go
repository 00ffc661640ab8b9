package routes

import "github.com/gin-gonic/gin"

const (
	PathSession  = "/session"
	PathData     = "/data"
	PathPayments = "/payments"
)

func addGatewayRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.GET(PathSession, h.Session.GetSessionResult)
	rg.GET(PathData, h.Transaction.ListTransactions)

	payments := rg.Group(PathPayments)
	{
		payments.POST("/checkout", h.Payment.Checkout)
		payments.POST("/purchase", h.Payment.Purchase)
		payments.POST("/refund", h.Payment.Refund)
		payments.POST("/void", h.Payment.Void)
	}
}
