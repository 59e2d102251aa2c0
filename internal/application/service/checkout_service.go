package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/cart"
	"github.com/wekesadev/sokopos-api/internal/domain/entity"
	"github.com/wekesadev/sokopos-api/internal/domain/enum"
	"github.com/wekesadev/sokopos-api/internal/domain/repository"
	"github.com/wekesadev/sokopos-api/internal/metrics"
	"github.com/wekesadev/sokopos-api/pkg/apperror"
)

// CheckoutService turns the cashier's cart into a persisted order. Loyalty
// redemption and order creation form one logical transaction: if the
// redeem fails the order is never created, and if order creation fails the
// cart is preserved for retry without redeeming the points a second time.
type CheckoutService struct {
	carts        *cart.Store
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	branchRepo   repository.BranchRepository
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	carts *cart.Store,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	branchRepo repository.BranchRepository,
) *CheckoutService {
	return &CheckoutService{
		carts:        carts,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		branchRepo:   branchRepo,
	}
}

// CheckoutInput carries the loyalty choice made at the payment dialog.
type CheckoutInput struct {
	LoyaltyPoints int
	UseMaxPoints  bool
}

// CheckoutResult is the created order plus any loyalty adjustment the
// cashier should relay to the customer.
type CheckoutResult struct {
	Order        *entity.Order `json:"order"`
	PointsNotice string        `json:"pointsNotice,omitempty"`
}

// Checkout validates the loyalty request, redeems points, persists the
// order and resets the cart. The created order stays retrievable from the
// cart as the current order for receipt printing.
func (s *CheckoutService) Checkout(ctx context.Context, cashierID, branchID uuid.UUID, input *CheckoutInput) (*CheckoutResult, error) {
	c := s.carts.Get(cashierID)
	snap := c.Snapshot()

	if len(snap.Items) == 0 {
		return nil, apperror.NewBadRequestError("Cart is empty")
	}

	rate := s.defaultTaxRate(ctx, branchID)
	subtotal := cart.Subtotal(snap.Items)
	breakdown := cart.ComputeBreakdown(snap.Items, rate)
	var totalTax float64
	for _, line := range breakdown {
		totalTax += line.TaxAmount
	}
	discountAmount := cart.DiscountAmount(subtotal, snap.Discount)
	total := cart.Total(snap.Items, snap.Discount, rate)

	redemption, pointsNotice, err := s.resolveLoyalty(snap, total, input)
	if err != nil {
		return nil, err
	}
	points := redemption.Points
	pointsDiscount := redemption.Discount()
	finalTotal := redemption.FinalTotal()

	// Redeem before creating the order. Points already marked redeemed by
	// a previous failed attempt are not deducted again.
	if points > 0 && snap.RedeemedPoints == 0 {
		if err := s.customerRepo.RedeemPoints(ctx, snap.Customer.ID, points); err != nil {
			metrics.CheckoutFailures.WithLabelValues("redeem").Inc()
			return nil, err
		}
		c.MarkPointsRedeemed(points)
	}

	order := &entity.Order{
		InvoiceNo:         fmt.Sprintf("INV-%s", uuid.New().String()[:8]),
		BranchID:          branchID,
		CashierID:         cashierID,
		Status:            enum.OrderStatusCompleted,
		SubTotal:          toCents(subtotal),
		Tax:               toCents(totalTax),
		Discount:          toCents(discountAmount + pointsDiscount),
		TotalAmount:       toCents(finalTotal),
		LoyaltyPointsUsed: points,
		PaymentType:       snap.PaymentMethod,
		Note:              snap.Note,
	}
	if snap.Customer != nil {
		id := snap.Customer.ID
		order.CustomerID = &id
	}
	for _, item := range snap.Items {
		lineTotal := item.SellingPrice * float64(item.Quantity)
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     toCents(item.SellingPrice),
			Total:     toCents(lineTotal),
		})
	}
	for _, line := range breakdown {
		order.TaxBreakdown = append(order.TaxBreakdown, entity.OrderTaxBreakdown{
			Name:       line.Name,
			Percentage: line.Percentage,
			TaxType:    line.TaxType,
			SubTotal:   toCents(line.Subtotal),
			TaxAmount:  toCents(line.TaxAmount),
		})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		// Cart untouched; the redeemed marker prevents a double deduction
		// when the cashier retries.
		metrics.CheckoutFailures.WithLabelValues("create").Inc()
		return nil, err
	}

	metrics.OrdersCreated.WithLabelValues(order.PaymentType.String()).Inc()
	metrics.SalesAmount.Add(finalTotal)
	if points > 0 {
		metrics.LoyaltyPointsRedeemed.Add(float64(points))
	}

	c.ResetOrder()
	c.SetCurrentOrder(order.ID)
	return &CheckoutResult{Order: order, PointsNotice: pointsNotice}, nil
}

// resolveLoyalty settles which points this order redeems. Points already
// deducted by an earlier failed attempt bind the order no matter what the
// retry asks for; otherwise the request is validated against the customer
// balance and the order total, clamping requests worth more than the
// order and reporting the clamp in the returned notice.
func (s *CheckoutService) resolveLoyalty(snap cart.Snapshot, total float64, input *CheckoutInput) (*cart.Redemption, string, error) {
	if snap.RedeemedPoints > 0 {
		r := &cart.Redemption{Total: total, Points: snap.RedeemedPoints}
		return r, "", nil
	}

	if input == nil || (input.LoyaltyPoints <= 0 && !input.UseMaxPoints) {
		return &cart.Redemption{Total: total}, "", nil
	}
	if snap.Customer == nil {
		return nil, "", apperror.NewBadRequestError("Select a customer before redeeming points")
	}

	r := &cart.Redemption{Available: snap.Customer.LoyaltyPoints, Total: total}
	if input.UseMaxPoints {
		r.UseMax()
		return r, "", nil
	}
	if err := r.Request(input.LoyaltyPoints); err != nil {
		if err == cart.ErrInsufficientPoints {
			return nil, "", apperror.NewBadRequestError("Insufficient loyalty points")
		}
		// clamped to the order total; the clamped amount is applied
		notice := fmt.Sprintf("Points discount exceeds order total; redeeming %d points instead", r.Points)
		return r, notice, nil
	}
	return r, "", nil
}

func (s *CheckoutService) defaultTaxRate(ctx context.Context, branchID uuid.UUID) float64 {
	branch, err := s.branchRepo.GetByID(ctx, branchID)
	if err != nil || branch == nil {
		return cart.DefaultTaxPercentage
	}
	return branch.TaxPercentage
}

// toCents converts a dollar amount to cents, rounding half away from zero.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
