package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/application/service"
	"github.com/wekesadev/sokopos-api/internal/presentation/http/dto/response"
)

// BranchHandler handles branch HTTP requests
type BranchHandler struct {
	branchService *service.BranchService
}

// NewBranchHandler creates a new branch handler
func NewBranchHandler(branchService *service.BranchService) *BranchHandler {
	return &BranchHandler{branchService: branchService}
}

// List handles GET /branches
func (h *BranchHandler) List(c *gin.Context) {
	branches, err := h.branchService.ListBranches(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Branches retrieved successfully", branches)
}

// Get handles GET /branches/:id
func (h *BranchHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID")
		return
	}

	branch, err := h.branchService.GetBranch(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Branch retrieved successfully", branch)
}

type updateBranchRequest struct {
	Name          *string  `json:"name"`
	Address       *string  `json:"address"`
	Phone         *string  `json:"phone"`
	Email         *string  `json:"email"`
	TaxPercentage *float64 `json:"taxPercentage"`
}

// Update handles PATCH /branches/:id — including the default tax rate
// applied to items without a tax category.
func (h *BranchHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID")
		return
	}

	var req updateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	branch, err := h.branchService.UpdateBranch(c.Request.Context(), id, &service.UpdateBranchInput{
		Name:          req.Name,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
		TaxPercentage: req.TaxPercentage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Branch updated successfully", branch)
}
