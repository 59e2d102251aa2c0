package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/domain/entity"
	"github.com/wekesadev/sokopos-api/internal/domain/enum"
	"github.com/wekesadev/sokopos-api/internal/domain/repository"
	"github.com/wekesadev/sokopos-api/pkg/apperror"
)

// TaxCategoryService manages the branch's tax rules. Categories are copied
// onto cart items at add-time, so edits here never change items already in
// a cart.
type TaxCategoryService struct {
	taxCategoryRepo repository.TaxCategoryRepository
}

// NewTaxCategoryService creates a new tax category service
func NewTaxCategoryService(taxCategoryRepo repository.TaxCategoryRepository) *TaxCategoryService {
	return &TaxCategoryService{taxCategoryRepo: taxCategoryRepo}
}

// TaxCategoryInput represents the create/update tax category input
type TaxCategoryInput struct {
	Name        string
	Description *string
	Percentage  float64
	TaxType     enum.TaxType
}

func (s *TaxCategoryService) validateInput(input *TaxCategoryInput) error {
	if input.Name == "" {
		return apperror.NewBadRequestError("Tax category name is required")
	}
	if input.Percentage < 0 || input.Percentage > 100 {
		return apperror.NewBadRequestError("Percentage must be between 0 and 100")
	}
	return nil
}

// CreateTaxCategory creates a category, rejecting duplicate names within
// the branch.
func (s *TaxCategoryService) CreateTaxCategory(ctx context.Context, branchID uuid.UUID, input *TaxCategoryInput) (*entity.TaxCategory, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	exists, err := s.taxCategoryRepo.ExistsByBranchAndName(ctx, branchID, input.Name, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewConflictError("A tax category with this name already exists")
	}

	category := &entity.TaxCategory{
		BranchID:    branchID,
		Name:        input.Name,
		Description: input.Description,
		Percentage:  input.Percentage,
		TaxType:     input.TaxType,
		IsActive:    true,
	}
	if err := s.taxCategoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetTaxCategory returns a category by id.
func (s *TaxCategoryService) GetTaxCategory(ctx context.Context, id uuid.UUID) (*entity.TaxCategory, error) {
	category, err := s.taxCategoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Tax category")
	}
	return category, nil
}

// ListTaxCategories returns the branch's categories; activeOnly limits the
// list to active ones (the set offered when assigning products).
func (s *TaxCategoryService) ListTaxCategories(ctx context.Context, branchID uuid.UUID, activeOnly bool) ([]entity.TaxCategory, error) {
	return s.taxCategoryRepo.List(ctx, branchID, activeOnly)
}

// UpdateTaxCategory updates a category, keeping names unique per branch.
func (s *TaxCategoryService) UpdateTaxCategory(ctx context.Context, id uuid.UUID, input *TaxCategoryInput) (*entity.TaxCategory, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	category, err := s.GetTaxCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.taxCategoryRepo.ExistsByBranchAndName(ctx, category.BranchID, input.Name, &id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewConflictError("A tax category with this name already exists")
	}

	category.Name = input.Name
	category.Description = input.Description
	category.Percentage = input.Percentage
	category.TaxType = input.TaxType

	if err := s.taxCategoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteTaxCategory soft-deletes a category. Products referencing it fall
// back to the branch default rate.
func (s *TaxCategoryService) DeleteTaxCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetTaxCategory(ctx, id); err != nil {
		return err
	}
	return s.taxCategoryRepo.Delete(ctx, id)
}

// SetActive activates or deactivates a category.
func (s *TaxCategoryService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.TaxCategory, error) {
	category, err := s.GetTaxCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	category.IsActive = active
	if err := s.taxCategoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// InitDefaults seeds the standard category set for a branch that has none:
// Standard Rate 18% exclusive, Reduced Rate 5% exclusive and Zero Rate 0%.
// A branch with existing categories is left alone.
func (s *TaxCategoryService) InitDefaults(ctx context.Context, branchID uuid.UUID) ([]entity.TaxCategory, error) {
	count, err := s.taxCategoryRepo.CountByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperror.NewConflictError("Branch already has tax categories")
	}

	defaults := []entity.TaxCategory{
		{Name: "Standard Rate", Description: strPtr("Default standard tax rate"), Percentage: 18, TaxType: enum.TaxTypeExclusive},
		{Name: "Reduced Rate", Description: strPtr("Reduced tax rate for essential goods"), Percentage: 5, TaxType: enum.TaxTypeExclusive},
		{Name: "Zero Rate", Description: strPtr("Zero-rated goods"), Percentage: 0, TaxType: enum.TaxTypeExclusive},
	}

	created := make([]entity.TaxCategory, 0, len(defaults))
	for _, d := range defaults {
		category := d
		category.BranchID = branchID
		category.IsActive = true
		if err := s.taxCategoryRepo.Create(ctx, &category); err != nil {
			return nil, err
		}
		created = append(created, category)
	}
	return created, nil
}

func strPtr(s string) *string {
	return &s
}
