package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/application/service"
	"github.com/wekesadev/sokopos-api/internal/domain/repository"
	"github.com/wekesadev/sokopos-api/internal/presentation/http/dto/response"
	"github.com/wekesadev/sokopos-api/pkg/pagination"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService   *service.OrderService
	receiptService *service.ReceiptService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, receiptService *service.ReceiptService) *OrderHandler {
	return &OrderHandler{orderService: orderService, receiptService: receiptService}
}

// List handles GET /orders. Non-admin cashiers only see their own sales.
func (h *OrderHandler) List(c *gin.Context) {
	branchID := GetBranchID(c)
	if branchID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
	}

	if !IsAdmin(c) {
		params.CashierID = GetCashierID(c)
	} else if cashierIDStr := c.Query("cashier_id"); cashierIDStr != "" {
		if cashierID, err := uuid.Parse(cashierIDStr); err == nil {
			params.CashierID = &cashierID
		}
	}
	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		if customerID, err := uuid.Parse(customerIDStr); err == nil {
			params.CustomerID = &customerID
		}
	}
	if startStr := c.Query("start_date"); startStr != "" {
		if start, err := time.Parse("2006-01-02", startStr); err == nil {
			params.StartDate = &start
		}
	}
	if endStr := c.Query("end_date"); endStr != "" {
		if end, err := time.Parse("2006-01-02", endStr); err == nil {
			endOfDay := end.Add(24*time.Hour - time.Nanosecond)
			params.EndDate = &endOfDay
		}
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), *branchID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Receipt handles GET /orders/:id/receipt — the 80mm HTML fragment the
// register opens in a print window.
func (h *OrderHandler) Receipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	html, err := h.receiptService.RenderReceiptHTML(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Invoice handles GET /orders/:id/invoice — the full-page invoice.
func (h *OrderHandler) Invoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	html, err := h.receiptService.RenderInvoiceHTML(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Print handles POST /orders/:id/print — sends the receipt to the
// configured thermal printer.
func (h *OrderHandler) Print(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	receipt, err := h.receiptService.PrintOrderReceipt(c.Request.Context(), id)
	if err != nil {
		if receipt != nil {
			// Printing failed but the receipt is usable on screen
			response.Success(c, 200, "Printer unavailable, returning receipt data", receipt)
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed", receipt)
}
