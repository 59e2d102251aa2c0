package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/domain/entity"
)

// TaxCategoryRepository defines the interface for tax category data operations
type TaxCategoryRepository interface {
	Create(ctx context.Context, category *entity.TaxCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TaxCategory, error)
	Update(ctx context.Context, category *entity.TaxCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns the branch's categories; activeOnly limits to active ones
	List(ctx context.Context, branchID uuid.UUID, activeOnly bool) ([]entity.TaxCategory, error)
	// ExistsByBranchAndName reports whether another category in the branch
	// already uses the name; excludeID skips the category being updated
	ExistsByBranchAndName(ctx context.Context, branchID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)
	CountByBranch(ctx context.Context, branchID uuid.UUID) (int64, error)
}
