package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/domain/entity"
	"github.com/wekesadev/sokopos-api/internal/domain/repository"
	"github.com/wekesadev/sokopos-api/pkg/apperror"
	"github.com/wekesadev/sokopos-api/pkg/pagination"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo     repository.ProductRepository
	taxCategoryRepo repository.TaxCategoryRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, taxCategoryRepo repository.TaxCategoryRepository) *ProductService {
	return &ProductService{productRepo: productRepo, taxCategoryRepo: taxCategoryRepo}
}

// ProductInput represents the create/update product input
type ProductInput struct {
	Name          string
	SKU           string
	SellingPrice  float64
	Quantity      int
	TaxExempt     bool
	TaxCategoryID *uuid.UUID
}

func (s *ProductService) validateInput(ctx context.Context, input *ProductInput) error {
	if input.Name == "" {
		return apperror.NewBadRequestError("Product name is required")
	}
	if input.SKU == "" {
		return apperror.NewBadRequestError("Product SKU is required")
	}
	if input.SellingPrice < 0 {
		return apperror.NewBadRequestError("Selling price cannot be negative")
	}
	if input.TaxCategoryID != nil {
		category, err := s.taxCategoryRepo.GetByID(ctx, *input.TaxCategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return apperror.NewNotFoundError("Tax category")
		}
	}
	return nil
}

// CreateProduct adds a product to the branch catalog.
func (s *ProductService) CreateProduct(ctx context.Context, branchID uuid.UUID, input *ProductInput) (*entity.Product, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.GetBySKU(ctx, input.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A product with this SKU already exists")
	}

	product := &entity.Product{
		BranchID:      branchID,
		TaxCategoryID: input.TaxCategoryID,
		Name:          input.Name,
		SKU:           input.SKU,
		Quantity:      input.Quantity,
		TaxExempt:     input.TaxExempt,
	}
	product.SetSellingPriceFromDecimal(input.SellingPrice)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct returns a product with its tax category.
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts returns the branch catalog with pagination and search.
func (s *ProductService) ListProducts(ctx context.Context, branchID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Product], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	products, total, err := s.productRepo.List(ctx, branchID, params, search)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(products, p), nil
}

// UpdateProduct replaces the product's editable fields. Carts that already
// contain the product keep the values captured at add-time.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.SKU != product.SKU {
		existing, err := s.productRepo.GetBySKU(ctx, input.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperror.NewConflictError("A product with this SKU already exists")
		}
	}

	product.Name = input.Name
	product.SKU = input.SKU
	product.Quantity = input.Quantity
	product.TaxExempt = input.TaxExempt
	product.TaxCategoryID = input.TaxCategoryID
	product.TaxCategory = nil
	product.SetSellingPriceFromDecimal(input.SellingPrice)

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, id)
}

// DeleteProduct soft-deletes a product.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}
