package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/domain/entity"
)

// BranchRepository defines the interface for branch data operations
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error)
	Update(ctx context.Context, branch *entity.Branch) error
	List(ctx context.Context) ([]entity.Branch, error)
}

// CashierRepository defines the interface for cashier data operations
type CashierRepository interface {
	Create(ctx context.Context, cashier *entity.Cashier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Cashier, error)
	GetByEmail(ctx context.Context, email string) (*entity.Cashier, error)
	Update(ctx context.Context, cashier *entity.Cashier) error
	ListByBranch(ctx context.Context, branchID uuid.UUID) ([]entity.Cashier, error)
}
