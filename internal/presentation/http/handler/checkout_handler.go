package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/wekesadev/sokopos-api/internal/application/service"
	"github.com/wekesadev/sokopos-api/internal/presentation/http/dto/response"
)

// CheckoutHandler handles the payment flow
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

type checkoutRequest struct {
	LoyaltyPoints int  `json:"loyaltyPoints"`
	UseMaxPoints  bool `json:"useMaxPoints"`
}

// Checkout handles POST /checkout. Send an Idempotency-Key header so a
// retried request replays the original response instead of creating a
// second order.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	cashierID := GetCashierID(c)
	branchID := GetBranchID(c)
	if cashierID == nil || branchID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	var req checkoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
	}

	result, err := h.checkoutService.Checkout(c.Request.Context(), *cashierID, *branchID, &service.CheckoutInput{
		LoyaltyPoints: req.LoyaltyPoints,
		UseMaxPoints:  req.UseMaxPoints,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", result)
}
