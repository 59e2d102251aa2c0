package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/domain/entity"
	"github.com/wekesadev/sokopos-api/internal/domain/repository"
	"github.com/wekesadev/sokopos-api/pkg/apperror"
	"github.com/wekesadev/sokopos-api/pkg/pagination"
)

// CustomerService handles loyalty-customer operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name  string
	Email *string
	Phone *string
}

// CreateCustomer registers a new loyalty customer with a zero balance.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}

	customer := &entity.Customer{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer returns a customer by id.
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers returns customers with pagination and name/phone search.
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, p), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	Name  *string
	Email *string
	Phone *string
}

// UpdateCustomer applies a partial update to the customer record.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer soft-deletes the customer.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}

// RedeemPoints deducts points from the customer's balance. The repository
// performs a conditional decrement, so a concurrent redemption cannot push
// the balance negative.
func (s *CustomerService) RedeemPoints(ctx context.Context, id uuid.UUID, points int) (*entity.Customer, error) {
	if points <= 0 {
		return nil, apperror.NewBadRequestError("Points must be greater than zero")
	}

	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer.LoyaltyPoints < points {
		return nil, apperror.NewBadRequestError("Insufficient loyalty points")
	}

	if err := s.customerRepo.RedeemPoints(ctx, id, points); err != nil {
		return nil, err
	}
	return s.GetCustomer(ctx, id)
}

// AwardPoints adds points to the customer's balance.
func (s *CustomerService) AwardPoints(ctx context.Context, id uuid.UUID, points int) (*entity.Customer, error) {
	if points <= 0 {
		return nil, apperror.NewBadRequestError("Points must be greater than zero")
	}
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return nil, err
	}
	if err := s.customerRepo.AwardPoints(ctx, id, points); err != nil {
		return nil, err
	}
	return s.GetCustomer(ctx, id)
}
