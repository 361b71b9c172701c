package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/njorogedev/bistro-api/controllers"
)

func MenuRoutes(server *gin.Engine, ctrl *controllers.MenuController) {
	server.POST("/update-menu", ctrl.UpdateMenu)
}
