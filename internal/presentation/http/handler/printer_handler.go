package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/wekesadev/sokopos-api/internal/application/service"
	"github.com/wekesadev/sokopos-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer status and test printing
type PrinterHandler struct {
	receiptService *service.ReceiptService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(receiptService *service.ReceiptService) *PrinterHandler {
	return &PrinterHandler{receiptService: receiptService}
}

// Status handles GET /printer/status
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status", h.receiptService.GetPrinterStatus())
}

// TestPrint handles POST /printer/test
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	receipt, err := h.receiptService.TestPrint()
	if err != nil {
		response.Success(c, 200, "Printer unavailable, returning receipt data", receipt)
		return
	}
	response.OK(c, "Test page printed", receipt)
}
