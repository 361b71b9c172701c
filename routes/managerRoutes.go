package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/njorogedev/bistro-api/controllers"
)

func ManagerRoutes(server *gin.Engine, ctrl *controllers.ManagerController) {
	manager := server.Group("/api/manager")
	{
		manager.POST("/login", ctrl.Login)
		manager.POST("/change-credentials", ctrl.ChangeCredentials)
	}
}
