package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/application/service"
	"github.com/wekesadev/sokopos-api/internal/cart"
	"github.com/wekesadev/sokopos-api/internal/domain/enum"
	"github.com/wekesadev/sokopos-api/internal/presentation/http/dto/response"
)

// CartHandler handles the cashier's cart HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) view(c *gin.Context, message string) {
	cashierID := GetCashierID(c)
	branchID := GetBranchID(c)
	if cashierID == nil || branchID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	result, err := h.cartService.View(c.Request.Context(), *cashierID, *branchID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, message, result)
}

// Get handles GET /cart
func (h *CartHandler) Get(c *gin.Context) {
	h.view(c, "Cart retrieved successfully")
}

type addItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity"`
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	cashierID := GetCashierID(c)
	if cashierID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.cartService.AddProduct(c.Request.Context(), *cashierID, req.ProductID, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}
	h.view(c, "Item added to cart")
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem handles PATCH /cart/items/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	cashierID := GetCashierID(c)
	if cashierID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	h.cartService.UpdateQuantity(*cashierID, productID, req.Quantity)
	h.view(c, "Cart updated")
}

// RemoveItem handles DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cashierID := GetCashierID(c)
	if cashierID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	h.cartService.RemoveItem(*cashierID, productID)
	h.view(c, "Item removed from cart")
}

type setCustomerRequest struct {
	CustomerID *uuid.UUID `json:"customerId"`
}

// SetCustomer handles PUT /cart/customer
func (h *CartHandler) SetCustomer(c *gin.Context) {
	cashierID := GetCashierID(c)
	if cashierID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	var req setCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.cartService.SetCustomer(c.Request.Context(), *cashierID, req.CustomerID); err != nil {
		response.Error(c, err)
		return
	}
	h.view(c, "Cart customer updated")
}

type setNoteRequest struct {
	Note string `json:"note"`
}

// SetNote handles PUT /cart/note
func (h *CartHandler) SetNote(c *gin.Context) {
	cashierID := GetCashierID(c)
	if cashierID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	var req setNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	h.cartService.SetNote(*cashierID, req.Note)
	h.view(c, "Cart note updated")
}

type setDiscountRequest struct {
	Type  enum.DiscountType `json:"type"`
	Value float64           `json:"value"`
}

// SetDiscount handles PUT /cart/discount
func (h *CartHandler) SetDiscount(c *gin.Context) {
	cashierID := GetCashierID(c)
	if cashierID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	var req setDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.cartService.SetDiscount(*cashierID, cart.Discount{Type: req.Type, Value: req.Value}); err != nil {
		response.Error(c, err)
		return
	}
	h.view(c, "Cart discount updated")
}

type setPaymentMethodRequest struct {
	PaymentMethod enum.PaymentMethod `json:"paymentMethod"`
}

// SetPaymentMethod handles PUT /cart/payment-method
func (h *CartHandler) SetPaymentMethod(c *gin.Context) {
	cashierID := GetCashierID(c)
	if cashierID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	var req setPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	h.cartService.SetPaymentMethod(*cashierID, req.PaymentMethod)
	h.view(c, "Payment method updated")
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(c *gin.Context) {
	cashierID := GetCashierID(c)
	if cashierID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	h.cartService.Clear(*cashierID)
	h.view(c, "Cart cleared")
}

// Hold handles POST /cart/hold
func (h *CartHandler) Hold(c *gin.Context) {
	cashierID := GetCashierID(c)
	if cashierID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	heldID := h.cartService.Hold(*cashierID)
	if heldID == "" {
		response.BadRequest(c, "Cart is empty, nothing to hold")
		return
	}
	h.view(c, "Order held")
}

// Held handles GET /cart/held
func (h *CartHandler) Held(c *gin.Context) {
	cashierID := GetCashierID(c)
	if cashierID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	response.OK(c, "Held orders retrieved successfully", h.cartService.HeldOrders(*cashierID))
}

// Resume handles POST /cart/held/:heldOrderId/resume
func (h *CartHandler) Resume(c *gin.Context) {
	cashierID := GetCashierID(c)
	if cashierID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	if err := h.cartService.Resume(*cashierID, c.Param("heldOrderId")); err != nil {
		response.Error(c, err)
		return
	}
	h.view(c, "Held order resumed")
}
