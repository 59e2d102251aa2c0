package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/domain/entity"
	"github.com/wekesadev/sokopos-api/internal/domain/enum"
	"github.com/wekesadev/sokopos-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// Create persists the order together with its items and tax breakdown
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Order, error)
	// GetWithDetails loads the order with items, products, customer and breakdown
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, branchID uuid.UUID, params *OrderFilterParams) ([]entity.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.OrderStatus
	CashierID  *uuid.UUID
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}
