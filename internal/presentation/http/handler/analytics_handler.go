package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wekesadev/sokopos-api/internal/application/service"
	"github.com/wekesadev/sokopos-api/internal/presentation/http/dto/response"
)

// AnalyticsHandler handles dashboard analytics HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Overview handles GET /analytics/overview
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	branchID := GetBranchID(c)
	if branchID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	result, err := h.analyticsService.GetStoreOverview(c.Request.Context(), *branchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store overview retrieved successfully", result)
}

// DailySales handles GET /analytics/daily-sales?days=7
func (h *AnalyticsHandler) DailySales(c *gin.Context) {
	branchID := GetBranchID(c)
	if branchID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	result, err := h.analyticsService.GetDailySales(c.Request.Context(), *branchID, days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily sales retrieved successfully", result)
}

// PaymentMethods handles GET /analytics/payment-methods
func (h *AnalyticsHandler) PaymentMethods(c *gin.Context) {
	branchID := GetBranchID(c)
	if branchID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	result, err := h.analyticsService.GetSalesByPaymentMethod(c.Request.Context(), *branchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales by payment method retrieved successfully", result)
}

// RecentSales handles GET /analytics/recent-sales?limit=10
func (h *AnalyticsHandler) RecentSales(c *gin.Context) {
	branchID := GetBranchID(c)
	if branchID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	result, err := h.analyticsService.GetRecentSales(c.Request.Context(), *branchID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recent sales retrieved successfully", result)
}
