package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/njorogedev/bistro-api/controllers"
)

func OrderRoutes(server *gin.Engine, ctrl *controllers.OrderController) {
	payments := server.Group("/api/payments")
	{
		payments.POST("/create-order", ctrl.CreatePaymentOrder)
		payments.POST("/verify-and-create-order", ctrl.VerifyAndCreateOrder)
	}

	orders := server.Group("/api/orders")
	{
		orders.GET("", ctrl.GetOrders)
		orders.PATCH("/:id/status", ctrl.UpdateOrderStatus)
	}
}
