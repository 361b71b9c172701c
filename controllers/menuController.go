package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/njorogedev/bistro-api/services"
)

type MenuController struct {
	menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{menu: menu}
}

// UpdateMenu overwrites the published menu file with the request body.
func (c *MenuController) UpdateMenu(ctx *gin.Context) {
	var payload any
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := c.menu.Publish(ctx.Request.Context(), payload); err != nil {
		log.Println("Menu publish failed:", err)
		sendJSONResponse(ctx, http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true})
}
