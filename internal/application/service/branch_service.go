package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/domain/entity"
	"github.com/wekesadev/sokopos-api/internal/domain/repository"
	"github.com/wekesadev/sokopos-api/pkg/apperror"
)

// BranchService handles branch configuration, including the default tax
// rate applied to items without an explicit tax category.
type BranchService struct {
	branchRepo repository.BranchRepository
}

// NewBranchService creates a new branch service
func NewBranchService(branchRepo repository.BranchRepository) *BranchService {
	return &BranchService{branchRepo: branchRepo}
}

// GetBranch returns a branch by id.
func (s *BranchService) GetBranch(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}
	return branch, nil
}

// ListBranches returns all branches.
func (s *BranchService) ListBranches(ctx context.Context) ([]entity.Branch, error) {
	return s.branchRepo.List(ctx)
}

// UpdateBranchInput represents the update branch input
type UpdateBranchInput struct {
	Name          *string
	Address       *string
	Phone         *string
	Email         *string
	TaxPercentage *float64
}

// UpdateBranch applies a partial update. The tax percentage is validated
// here, at the admin boundary, rather than in the tax calculator.
func (s *BranchService) UpdateBranch(ctx context.Context, id uuid.UUID, input *UpdateBranchInput) (*entity.Branch, error) {
	branch, err := s.GetBranch(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.TaxPercentage != nil {
		if *input.TaxPercentage < 0 || *input.TaxPercentage > 100 {
			return nil, apperror.NewBadRequestError("Tax percentage must be between 0 and 100")
		}
		branch.TaxPercentage = *input.TaxPercentage
	}
	if input.Name != nil {
		branch.Name = *input.Name
	}
	if input.Address != nil {
		branch.Address = input.Address
	}
	if input.Phone != nil {
		branch.Phone = input.Phone
	}
	if input.Email != nil {
		branch.Email = input.Email
	}

	if err := s.branchRepo.Update(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}
