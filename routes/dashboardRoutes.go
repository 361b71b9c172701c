package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/njorogedev/bistro-api/controllers"
)

func DashboardRoutes(server *gin.Engine, ctrl *controllers.DashboardController) {
	dashboard := server.Group("/api/dashboard")
	{
		dashboard.GET("/sales", ctrl.GetSales)
		dashboard.GET("/topdish", ctrl.GetTopDish)
	}
}
