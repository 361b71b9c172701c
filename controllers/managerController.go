package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/njorogedev/bistro-api/models"
	"github.com/njorogedev/bistro-api/services"
)

const (
	msgInvalidInput        = "invalid input"
	msgInvalidCredentials  = "Invalid credentials"
	msgInternalServerError = "Internal server error"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

type ManagerController struct {
	managers *services.ManagerService
}

func NewManagerController(managers *services.ManagerService) *ManagerController {
	return &ManagerController{managers: managers}
}

// Login checks manager credentials by exact match.
func (c *ManagerController) Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	err := c.managers.Login(ctx.Request.Context(), loginData.Username, loginData.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		sendJSONResponse(ctx, http.StatusUnauthorized, gin.H{
			"success": false,
			"message": msgInvalidCredentials,
		})
		return
	}
	if err != nil {
		log.Println("Manager login failed:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true})
}

// ChangeCredentials rotates a manager's username and password in place.
func (c *ManagerController) ChangeCredentials(ctx *gin.Context) {
	var changeData models.ChangeCredentialsData
	if err := ctx.ShouldBindJSON(&changeData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	err := c.managers.ChangeCredentials(
		ctx.Request.Context(),
		changeData.CurrentUser,
		changeData.CurrentPassword,
		changeData.NewUser,
		changeData.NewPassword,
	)
	if errors.Is(err, services.ErrInvalidCredentials) {
		sendJSONResponse(ctx, http.StatusUnauthorized, gin.H{
			"success": false,
			"message": msgInvalidCredentials,
		})
		return
	}
	if err != nil {
		log.Println("Credential change failed:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true})
}
