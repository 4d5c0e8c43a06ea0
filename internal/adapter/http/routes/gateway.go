package routes

import (
	"github.com/gin-gonic/gin"

	"payment-gateway-service/internal/adapter/http/handlers"
)

const PathPaymentGateway = "/paymentGateway"

func addPaymentGatewayRoutes(engine *gin.Engine, gatewayHandler *handlers.PaymentGatewayHandler) {
	gateway := engine.Group(PathPaymentGateway)
	{
		gateway.POST("/processPayment", gatewayHandler.ProcessPayment)
		gateway.PATCH("/processRefund", gatewayHandler.ProcessRefund)
		// Internal health probe; not exposed externally.
		gateway.GET("/test", gatewayHandler.Test)
	}
}
