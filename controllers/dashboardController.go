package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/njorogedev/bistro-api/services"
)

type DashboardController struct {
	reports *services.ReportService
}

func NewDashboardController(reports *services.ReportService) *DashboardController {
	return &DashboardController{reports: reports}
}

func (c *DashboardController) GetSales(ctx *gin.Context) {
	period := ctx.DefaultQuery("period", "day")
	if period != "day" && period != "week" && period != "month" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid period, expected day, week or month")
		return
	}

	date, err := time.ParseInLocation(dateLayout, ctx.Query("date"), time.Local)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid or missing date, expected YYYY-MM-DD")
		return
	}

	summary, err := c.reports.Sales(ctx.Request.Context(), period, date)
	if err != nil {
		log.Println("Failed to compute sales summary:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to compute sales summary")
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

func (c *DashboardController) GetTopDish(ctx *gin.Context) {
	date, err := time.ParseInLocation(dateLayout, ctx.Query("date"), time.Local)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid or missing date, expected YYYY-MM-DD")
		return
	}

	top, err := c.reports.TopDish(ctx.Request.Context(), date)
	if err != nil {
		log.Println("Failed to compute top dish:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to compute top dish")
		return
	}

	// No orders on that day renders as a JSON null.
	ctx.JSON(http.StatusOK, top)
}
