package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/njorogedev/bistro-api/models"
	"github.com/njorogedev/bistro-api/services"
)

const dateLayout = "2006-01-02"

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

func (c *OrderController) CreatePaymentOrder(ctx *gin.Context) {
	var body struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("JSON binding error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	gatewayOrder, err := c.orders.CreatePaymentOrder(ctx.Request.Context(), body.Amount)
	if err != nil {
		log.Println("Payment order creation failed:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create payment order")
		return
	}

	ctx.JSON(http.StatusOK, gatewayOrder)
}

func (c *OrderController) VerifyAndCreateOrder(ctx *gin.Context) {
	var body struct {
		GatewayOrderID   string              `json:"gatewayOrderId" binding:"required"`
		GatewayPaymentID string              `json:"gatewayPaymentId" binding:"required"`
		Signature        string              `json:"signature" binding:"required"`
		OrderPayload     models.OrderPayload `json:"orderPayload" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("JSON binding error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := c.orders.VerifyAndCreateOrder(
		ctx.Request.Context(),
		body.GatewayOrderID,
		body.GatewayPaymentID,
		body.Signature,
		body.OrderPayload,
	)
	if errors.Is(err, services.ErrSignatureMismatch) {
		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Payment verification failed",
		})
		return
	}
	if errors.Is(err, services.ErrNoItems) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Order has no items")
		return
	}
	if err != nil {
		log.Println("Order creation failed:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"order":   order,
	})
}

func (c *OrderController) GetOrders(ctx *gin.Context) {
	date, err := time.ParseInLocation(dateLayout, ctx.Query("date"), time.Local)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid or missing date, expected YYYY-MM-DD")
		return
	}

	orders, err := c.orders.ListOrders(ctx.Request.Context(), date)
	if err != nil {
		log.Println("Failed to fetch orders:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

func (c *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id")
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	order, err := c.orders.UpdateStatus(ctx.Request.Context(), uint(orderID), body.Status)
	if errors.Is(err, services.ErrOrderNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}
	if errors.Is(err, services.ErrBadTransition) {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Println("Failed to update order status:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	ctx.JSON(http.StatusOK, order)
}
