package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/application/service"
	"github.com/wekesadev/sokopos-api/internal/presentation/http/dto/response"
	"github.com/wekesadev/sokopos-api/pkg/pagination"
)

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	branchID := GetBranchID(c)
	if branchID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{Page: page, PerPage: perPage}

	result, err := h.productService.ListProducts(c.Request.Context(), *branchID, params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

type productRequest struct {
	Name          string     `json:"name" binding:"required"`
	SKU           string     `json:"sku" binding:"required"`
	SellingPrice  float64    `json:"sellingPrice"`
	Quantity      int        `json:"quantity"`
	TaxExempt     bool       `json:"taxExempt"`
	TaxCategoryID *uuid.UUID `json:"taxCategoryId"`
}

func (r *productRequest) toInput() *service.ProductInput {
	return &service.ProductInput{
		Name:          r.Name,
		SKU:           r.SKU,
		SellingPrice:  r.SellingPrice,
		Quantity:      r.Quantity,
		TaxExempt:     r.TaxExempt,
		TaxCategoryID: r.TaxCategoryID,
	}
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	branchID := GetBranchID(c)
	if branchID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), *branchID, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}
