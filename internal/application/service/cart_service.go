package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/cart"
	"github.com/wekesadev/sokopos-api/internal/domain/enum"
	"github.com/wekesadev/sokopos-api/internal/domain/repository"
	"github.com/wekesadev/sokopos-api/pkg/apperror"
)

// CartService exposes the cashier's in-memory cart: item mutations, held
// orders and the derived totals used by the register display.
type CartService struct {
	carts        *cart.Store
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	branchRepo   repository.BranchRepository
}

// NewCartService creates a new cart service
func NewCartService(
	carts *cart.Store,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	branchRepo repository.BranchRepository,
) *CartService {
	return &CartService{
		carts:        carts,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		branchRepo:   branchRepo,
	}
}

// CartView is the cart state plus every derived value the register needs.
type CartView struct {
	Items          []cart.LineItem    `json:"items"`
	Customer       *cart.CustomerRef  `json:"customer,omitempty"`
	Note           string             `json:"note"`
	Discount       cart.Discount      `json:"discount"`
	PaymentMethod  enum.PaymentMethod `json:"paymentMethod"`
	HeldOrders     []cart.HeldOrder   `json:"heldOrders"`
	CurrentOrderID *uuid.UUID         `json:"currentOrderId,omitempty"`
	Subtotal       float64            `json:"subtotal"`
	TaxBreakdown   []cart.TaxLine     `json:"taxBreakdown"`
	TotalTax       float64            `json:"totalTax"`
	DiscountAmount float64            `json:"discountAmount"`
	Total          float64            `json:"total"`
}

// View returns the cart with totals recomputed against the branch's
// current default tax rate.
func (s *CartService) View(ctx context.Context, cashierID, branchID uuid.UUID) (*CartView, error) {
	snap := s.carts.Get(cashierID).Snapshot()
	rate := s.defaultTaxRate(ctx, branchID)

	subtotal := cart.Subtotal(snap.Items)
	breakdown := cart.ComputeBreakdown(snap.Items, rate)
	var totalTax float64
	for _, line := range breakdown {
		totalTax += line.TaxAmount
	}

	view := &CartView{
		Items:          snap.Items,
		Customer:       snap.Customer,
		Note:           snap.Note,
		Discount:       snap.Discount,
		PaymentMethod:  snap.PaymentMethod,
		HeldOrders:     snap.HeldOrders,
		CurrentOrderID: snap.CurrentOrderID,
		Subtotal:       subtotal,
		TaxBreakdown:   breakdown,
		TotalTax:       totalTax,
		DiscountAmount: cart.DiscountAmount(subtotal, snap.Discount),
		Total:          cart.Total(snap.Items, snap.Discount, rate),
	}
	if view.Items == nil {
		view.Items = []cart.LineItem{}
	}
	if view.HeldOrders == nil {
		view.HeldOrders = []cart.HeldOrder{}
	}
	if view.TaxBreakdown == nil {
		view.TaxBreakdown = []cart.TaxLine{}
	}
	return view, nil
}

// AddProduct adds a catalog product to the cart, capturing its price and
// tax treatment at add-time. Adding the same product again increments the
// existing line.
func (s *CartService) AddProduct(ctx context.Context, cashierID, productID uuid.UUID, quantity int) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	item := cart.LineItem{
		ProductID:    product.ID,
		Name:         product.Name,
		SKU:          product.SKU,
		SellingPrice: product.GetSellingPriceDecimal(),
		Quantity:     quantity,
		TaxExempt:    product.TaxExempt,
	}
	if product.TaxCategory != nil && product.TaxCategory.IsActive {
		item.TaxCategory = &cart.TaxCategoryRef{
			ID:         product.TaxCategory.ID,
			Name:       product.TaxCategory.Name,
			Percentage: product.TaxCategory.Percentage,
			TaxType:    product.TaxCategory.TaxType,
		}
	}

	s.carts.Get(cashierID).AddItem(item)
	return nil
}

// UpdateQuantity sets an item's quantity; zero or negative removes it.
func (s *CartService) UpdateQuantity(cashierID, productID uuid.UUID, quantity int) {
	s.carts.Get(cashierID).UpdateQuantity(productID, quantity)
}

// RemoveItem removes an item from the cart.
func (s *CartService) RemoveItem(cashierID, productID uuid.UUID) {
	s.carts.Get(cashierID).RemoveItem(productID)
}

// SetCustomer attaches a loyalty customer to the cart, or detaches the
// current one when customerID is nil.
func (s *CartService) SetCustomer(ctx context.Context, cashierID uuid.UUID, customerID *uuid.UUID) error {
	c := s.carts.Get(cashierID)
	if customerID == nil {
		c.SetCustomer(nil)
		return nil
	}

	customer, err := s.customerRepo.GetByID(ctx, *customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	c.SetCustomer(&cart.CustomerRef{
		ID:            customer.ID,
		Name:          customer.Name,
		LoyaltyPoints: customer.LoyaltyPoints,
	})
	return nil
}

// SetNote replaces the order note.
func (s *CartService) SetNote(cashierID uuid.UUID, note string) {
	s.carts.Get(cashierID).SetNote(note)
}

// SetDiscount replaces the cart-wide discount after validating its value.
func (s *CartService) SetDiscount(cashierID uuid.UUID, discount cart.Discount) error {
	if discount.Value < 0 {
		return apperror.NewBadRequestError("Discount value cannot be negative")
	}
	if discount.Type == enum.DiscountPercentage && discount.Value > 100 {
		return apperror.NewBadRequestError("Percentage discount cannot exceed 100")
	}
	s.carts.Get(cashierID).SetDiscount(discount)
	return nil
}

// SetPaymentMethod replaces the payment method.
func (s *CartService) SetPaymentMethod(cashierID uuid.UUID, method enum.PaymentMethod) {
	s.carts.Get(cashierID).SetPaymentMethod(method)
}

// Clear resets the cart; held orders survive.
func (s *CartService) Clear(cashierID uuid.UUID) {
	s.carts.Get(cashierID).Clear()
}

// Hold parks the current cart. Returns the held order id, or an empty
// string when the cart had nothing to hold.
func (s *CartService) Hold(cashierID uuid.UUID) string {
	return s.carts.Get(cashierID).Hold()
}

// HeldOrders lists the cashier's parked orders.
func (s *CartService) HeldOrders(cashierID uuid.UUID) []cart.HeldOrder {
	held := s.carts.Get(cashierID).Snapshot().HeldOrders
	if held == nil {
		held = []cart.HeldOrder{}
	}
	return held
}

// Resume restores a held order into the live cart.
func (s *CartService) Resume(cashierID uuid.UUID, heldOrderID string) error {
	if err := s.carts.Get(cashierID).Resume(heldOrderID); err != nil {
		return apperror.NewNotFoundError("Held order")
	}
	return nil
}

// defaultTaxRate loads the branch rate, falling back to the standard
// default when the branch is missing or unreadable.
func (s *CartService) defaultTaxRate(ctx context.Context, branchID uuid.UUID) float64 {
	branch, err := s.branchRepo.GetByID(ctx, branchID)
	if err != nil || branch == nil {
		return cart.DefaultTaxPercentage
	}
	return branch.TaxPercentage
}
