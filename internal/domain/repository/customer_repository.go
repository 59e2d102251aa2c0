package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/domain/entity"
	"github.com/wekesadev/sokopos-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	// RedeemPoints atomically decrements the customer's balance by points.
	// It fails without modifying the row when the balance is insufficient.
	RedeemPoints(ctx context.Context, id uuid.UUID, points int) error
	// AwardPoints atomically increments the customer's balance by points.
	AwardPoints(ctx context.Context, id uuid.UUID, points int) error
}
