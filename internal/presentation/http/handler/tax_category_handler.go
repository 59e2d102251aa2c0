package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/application/service"
	"github.com/wekesadev/sokopos-api/internal/domain/enum"
	"github.com/wekesadev/sokopos-api/internal/presentation/http/dto/response"
)

// TaxCategoryHandler handles tax category HTTP requests
type TaxCategoryHandler struct {
	taxCategoryService *service.TaxCategoryService
}

// NewTaxCategoryHandler creates a new tax category handler
func NewTaxCategoryHandler(taxCategoryService *service.TaxCategoryService) *TaxCategoryHandler {
	return &TaxCategoryHandler{taxCategoryService: taxCategoryService}
}

// List handles GET /tax-categories; ?active=true limits to active ones.
func (h *TaxCategoryHandler) List(c *gin.Context) {
	branchID := GetBranchID(c)
	if branchID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	activeOnly := c.Query("active") == "true"
	categories, err := h.taxCategoryService.ListTaxCategories(c.Request.Context(), *branchID, activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tax categories retrieved successfully", categories)
}

// Get handles GET /tax-categories/:id
func (h *TaxCategoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tax category ID")
		return
	}

	category, err := h.taxCategoryService.GetTaxCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tax category retrieved successfully", category)
}

type taxCategoryRequest struct {
	Name        string       `json:"name" binding:"required"`
	Description *string      `json:"description"`
	Percentage  float64      `json:"percentage"`
	TaxType     enum.TaxType `json:"taxType"`
}

func (r *taxCategoryRequest) toInput() *service.TaxCategoryInput {
	return &service.TaxCategoryInput{
		Name:        r.Name,
		Description: r.Description,
		Percentage:  r.Percentage,
		TaxType:     r.TaxType,
	}
}

// Create handles POST /tax-categories
func (h *TaxCategoryHandler) Create(c *gin.Context) {
	branchID := GetBranchID(c)
	if branchID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	var req taxCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.taxCategoryService.CreateTaxCategory(c.Request.Context(), *branchID, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Tax category created successfully", category)
}

// Update handles PUT /tax-categories/:id
func (h *TaxCategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tax category ID")
		return
	}

	var req taxCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.taxCategoryService.UpdateTaxCategory(c.Request.Context(), id, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tax category updated successfully", category)
}

// Delete handles DELETE /tax-categories/:id
func (h *TaxCategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tax category ID")
		return
	}

	if err := h.taxCategoryService.DeleteTaxCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tax category deleted successfully", nil)
}

// Activate handles POST /tax-categories/:id/activate
func (h *TaxCategoryHandler) Activate(c *gin.Context) {
	h.setActive(c, true, "Tax category activated")
}

// Deactivate handles POST /tax-categories/:id/deactivate
func (h *TaxCategoryHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false, "Tax category deactivated")
}

func (h *TaxCategoryHandler) setActive(c *gin.Context, active bool, message string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tax category ID")
		return
	}

	category, err := h.taxCategoryService.SetActive(c.Request.Context(), id, active)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, message, category)
}

// InitDefaults handles POST /tax-categories/defaults
func (h *TaxCategoryHandler) InitDefaults(c *gin.Context) {
	branchID := GetBranchID(c)
	if branchID == nil {
		response.Unauthorized(c, "Cashier not authenticated")
		return
	}

	categories, err := h.taxCategoryService.InitDefaults(c.Request.Context(), *branchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Default tax categories created", categories)
}
