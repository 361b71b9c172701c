package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Bistro API.

The following are the endpoints for this API:

PAYMENTS
- POST "/api/payments/create-order" - Create a remote payment order
- POST "/api/payments/verify-and-create-order" - Verify payment and place the order

ORDERS
- GET "/api/orders?date=YYYY-MM-DD" - Orders for a given day, newest first
- PATCH "/api/orders/:id/status" - Move an order along its lifecycle

DASHBOARD
- GET "/api/dashboard/sales?period=day|week|month&date=YYYY-MM-DD" - Sales totals
- GET "/api/dashboard/topdish?date=YYYY-MM-DD" - Best selling dish of the day

MANAGER
- POST "/api/manager/login" - Manager login
- POST "/api/manager/change-credentials" - Rotate manager credentials

MENU
- POST "/update-menu" - Overwrite the published menu file`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
