package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekesadev/sokopos-api/internal/cart"
	"github.com/wekesadev/sokopos-api/internal/domain/entity"
	"github.com/wekesadev/sokopos-api/internal/domain/enum"
	"github.com/wekesadev/sokopos-api/internal/domain/repository"
	"github.com/wekesadev/sokopos-api/pkg/apperror"
	"github.com/wekesadev/sokopos-api/pkg/pagination"
)

type fakeOrderRepo struct {
	created   []*entity.Order
	createErr error
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	order.ID = uuid.New()
	order.CreatedAt = time.Now()
	f.created = append(f.created, order)
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	for _, o := range f.created {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeOrderRepo) List(ctx context.Context, branchID uuid.UUID, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return nil, 0, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	return nil
}

type fakeCustomerRepo struct {
	balances    map[uuid.UUID]int
	redeemCalls int
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error { return nil }

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	balance, ok := f.balances[id]
	if !ok {
		return nil, nil
	}
	return &entity.Customer{ID: id, Name: "Test Customer", LoyaltyPoints: balance}, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error { return nil }
func (f *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

func (f *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	return nil, 0, nil
}

func (f *fakeCustomerRepo) RedeemPoints(ctx context.Context, id uuid.UUID, points int) error {
	f.redeemCalls++
	if f.balances[id] < points {
		return apperror.NewBadRequestError("Insufficient loyalty points")
	}
	f.balances[id] -= points
	return nil
}

func (f *fakeCustomerRepo) AwardPoints(ctx context.Context, id uuid.UUID, points int) error {
	f.balances[id] += points
	return nil
}

type fakeBranchRepo struct {
	branch *entity.Branch
}

func (f *fakeBranchRepo) Create(ctx context.Context, branch *entity.Branch) error { return nil }

func (f *fakeBranchRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	return f.branch, nil
}

func (f *fakeBranchRepo) Update(ctx context.Context, branch *entity.Branch) error { return nil }
func (f *fakeBranchRepo) List(ctx context.Context) ([]entity.Branch, error)       { return nil, nil }

func newCheckoutFixture(taxRate float64) (*CheckoutService, *cart.Store, *fakeOrderRepo, *fakeCustomerRepo, uuid.UUID, uuid.UUID) {
	store := cart.NewStore()
	orderRepo := &fakeOrderRepo{}
	customerRepo := &fakeCustomerRepo{balances: map[uuid.UUID]int{}}
	branchID := uuid.New()
	branchRepo := &fakeBranchRepo{branch: &entity.Branch{ID: branchID, Name: "Main Branch", TaxPercentage: taxRate}}
	svc := NewCheckoutService(store, orderRepo, customerRepo, branchRepo)
	return svc, store, orderRepo, customerRepo, uuid.New(), branchID
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc, _, orderRepo, _, cashierID, branchID := newCheckoutFixture(18)

	result, err := svc.Checkout(context.Background(), cashierID, branchID, nil)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Empty(t, orderRepo.created)
}

func TestCheckout_ExclusiveTax(t *testing.T) {
	svc, store, orderRepo, _, cashierID, branchID := newCheckoutFixture(18)

	c := store.Get(cashierID)
	c.AddItem(cart.LineItem{ProductID: uuid.New(), Name: "Rice 2kg", SellingPrice: 100, Quantity: 2})
	c.SetPaymentMethod(enum.PaymentCard)

	result, err := svc.Checkout(context.Background(), cashierID, branchID, nil)

	require.NoError(t, err)
	require.Len(t, orderRepo.created, 1)
	order := result.Order
	assert.Empty(t, result.PointsNotice)
	assert.Contains(t, order.InvoiceNo, "INV-")
	assert.Equal(t, enum.OrderStatusCompleted, order.Status)
	assert.Equal(t, enum.PaymentCard, order.PaymentType)
	assert.Equal(t, int64(20000), order.SubTotal)
	assert.Equal(t, int64(3600), order.Tax)
	assert.Equal(t, int64(0), order.Discount)
	assert.Equal(t, int64(23600), order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, int64(20000), order.Items[0].Total)
	require.Len(t, order.TaxBreakdown, 1)
	assert.Equal(t, "Standard Tax", order.TaxBreakdown[0].Name)

	// The cart is reset and remembers the created order for receipt printing.
	snap := c.Snapshot()
	assert.Empty(t, snap.Items)
	require.NotNil(t, snap.CurrentOrderID)
	assert.Equal(t, order.ID, *snap.CurrentOrderID)
}

func TestCheckout_LoyaltyRedemption(t *testing.T) {
	svc, store, _, customerRepo, cashierID, branchID := newCheckoutFixture(0)

	customerID := uuid.New()
	customerRepo.balances[customerID] = 50

	c := store.Get(cashierID)
	c.AddItem(cart.LineItem{ProductID: uuid.New(), Name: "Milk 500ml", SellingPrice: 10, Quantity: 1})
	c.SetCustomer(&cart.CustomerRef{ID: customerID, Name: "Test Customer", LoyaltyPoints: 50})

	result, err := svc.Checkout(context.Background(), cashierID, branchID, &CheckoutInput{LoyaltyPoints: 50})

	require.NoError(t, err)
	assert.Equal(t, 50, result.Order.LoyaltyPointsUsed)
	assert.Equal(t, int64(250), result.Order.Discount)
	assert.Equal(t, int64(750), result.Order.TotalAmount)
	assert.Empty(t, result.PointsNotice)
	assert.Equal(t, 0, customerRepo.balances[customerID])
	assert.Equal(t, 1, customerRepo.redeemCalls)
}

func TestCheckout_InsufficientPoints(t *testing.T) {
	svc, store, orderRepo, customerRepo, cashierID, branchID := newCheckoutFixture(0)

	customerID := uuid.New()
	customerRepo.balances[customerID] = 10

	c := store.Get(cashierID)
	c.AddItem(cart.LineItem{ProductID: uuid.New(), Name: "Milk 500ml", SellingPrice: 10, Quantity: 1})
	c.SetCustomer(&cart.CustomerRef{ID: customerID, Name: "Test Customer", LoyaltyPoints: 10})

	result, err := svc.Checkout(context.Background(), cashierID, branchID, &CheckoutInput{LoyaltyPoints: 80})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Empty(t, orderRepo.created)
	assert.Equal(t, 0, customerRepo.redeemCalls)
	assert.Equal(t, 10, customerRepo.balances[customerID])

	// Rejected redemption leaves the cart intact.
	assert.Len(t, c.Snapshot().Items, 1)
}

func TestCheckout_PointsWithoutCustomer(t *testing.T) {
	svc, store, orderRepo, _, cashierID, branchID := newCheckoutFixture(0)

	store.Get(cashierID).AddItem(cart.LineItem{ProductID: uuid.New(), Name: "Milk 500ml", SellingPrice: 10, Quantity: 1})

	result, err := svc.Checkout(context.Background(), cashierID, branchID, &CheckoutInput{LoyaltyPoints: 20})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Empty(t, orderRepo.created)
}

func TestCheckout_PointsClampedToTotal(t *testing.T) {
	svc, store, _, customerRepo, cashierID, branchID := newCheckoutFixture(0)

	customerID := uuid.New()
	customerRepo.balances[customerID] = 300

	c := store.Get(cashierID)
	c.AddItem(cart.LineItem{ProductID: uuid.New(), Name: "Bread", SellingPrice: 10, Quantity: 1})
	c.SetCustomer(&cart.CustomerRef{ID: customerID, Name: "Test Customer", LoyaltyPoints: 300})

	// 300 points would be worth $15 against a $10 order; the redemption is
	// clamped to the 200 points that exactly cover the total, and the
	// adjustment is reported back for the cashier.
	result, err := svc.Checkout(context.Background(), cashierID, branchID, &CheckoutInput{LoyaltyPoints: 300})

	require.NoError(t, err)
	assert.Equal(t, 200, result.Order.LoyaltyPointsUsed)
	assert.Equal(t, int64(0), result.Order.TotalAmount)
	assert.Equal(t, 100, customerRepo.balances[customerID])
	assert.Contains(t, result.PointsNotice, "exceeds order total")
	assert.Contains(t, result.PointsNotice, "200")
}

func TestCheckout_UseMaxPoints(t *testing.T) {
	svc, store, _, customerRepo, cashierID, branchID := newCheckoutFixture(0)

	customerID := uuid.New()
	customerRepo.balances[customerID] = 500

	c := store.Get(cashierID)
	c.AddItem(cart.LineItem{ProductID: uuid.New(), Name: "Bread", SellingPrice: 10, Quantity: 1})
	c.SetCustomer(&cart.CustomerRef{ID: customerID, Name: "Test Customer", LoyaltyPoints: 500})

	result, err := svc.Checkout(context.Background(), cashierID, branchID, &CheckoutInput{UseMaxPoints: true})

	require.NoError(t, err)
	assert.Equal(t, 200, result.Order.LoyaltyPointsUsed)
	assert.Equal(t, int64(0), result.Order.TotalAmount)
	assert.Equal(t, 300, customerRepo.balances[customerID])
}

func TestCheckout_RetryAfterCreateFailureDoesNotRedeemTwice(t *testing.T) {
	svc, store, orderRepo, customerRepo, cashierID, branchID := newCheckoutFixture(0)

	customerID := uuid.New()
	customerRepo.balances[customerID] = 50

	c := store.Get(cashierID)
	c.AddItem(cart.LineItem{ProductID: uuid.New(), Name: "Milk 500ml", SellingPrice: 10, Quantity: 1})
	c.SetCustomer(&cart.CustomerRef{ID: customerID, Name: "Test Customer", LoyaltyPoints: 50})

	orderRepo.createErr = errors.New("connection refused")

	_, err := svc.Checkout(context.Background(), cashierID, branchID, &CheckoutInput{LoyaltyPoints: 50})
	require.Error(t, err)
	assert.Equal(t, 1, customerRepo.redeemCalls)
	assert.Equal(t, 0, customerRepo.balances[customerID])

	// The cart survives the failure so the cashier can retry.
	assert.Len(t, c.Snapshot().Items, 1)

	orderRepo.createErr = nil

	result, err := svc.Checkout(context.Background(), cashierID, branchID, &CheckoutInput{LoyaltyPoints: 50})
	require.NoError(t, err)
	assert.Equal(t, 1, customerRepo.redeemCalls, "points must not be deducted a second time on retry")
	assert.Equal(t, 50, result.Order.LoyaltyPointsUsed)
	assert.Equal(t, int64(750), result.Order.TotalAmount)
}

func TestCheckout_RetryWithDifferentPointsKeepsRedeemedPoints(t *testing.T) {
	svc, store, orderRepo, customerRepo, cashierID, branchID := newCheckoutFixture(0)

	customerID := uuid.New()
	customerRepo.balances[customerID] = 50

	c := store.Get(cashierID)
	c.AddItem(cart.LineItem{ProductID: uuid.New(), Name: "Milk 500ml", SellingPrice: 10, Quantity: 1})
	c.SetCustomer(&cart.CustomerRef{ID: customerID, Name: "Test Customer", LoyaltyPoints: 50})

	orderRepo.createErr = errors.New("connection refused")

	_, err := svc.Checkout(context.Background(), cashierID, branchID, &CheckoutInput{LoyaltyPoints: 50})
	require.Error(t, err)
	assert.Equal(t, 0, customerRepo.balances[customerID])

	orderRepo.createErr = nil

	// The retry asks for no points, but the 50 already deducted from the
	// customer must still be spent on this order.
	result, err := svc.Checkout(context.Background(), cashierID, branchID, &CheckoutInput{LoyaltyPoints: 0})
	require.NoError(t, err)
	assert.Equal(t, 50, result.Order.LoyaltyPointsUsed)
	assert.Equal(t, int64(250), result.Order.Discount)
	assert.Equal(t, int64(750), result.Order.TotalAmount)
	assert.Equal(t, 1, customerRepo.redeemCalls)
	assert.Equal(t, 0, customerRepo.balances[customerID])
}
