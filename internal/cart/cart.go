// Package cart holds the in-memory cart aggregate for an active checkout
// session and the pure pricing functions derived from it. All mutations go
// through the Cart methods, which serialize access with a mutex; derived
// values (subtotal, tax breakdown, totals) are recomputed on every read.
package cart

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/domain/enum"
)

var (
	// ErrHeldOrderNotFound is returned when resuming an unknown held order id
	ErrHeldOrderNotFound = errors.New("held order not found")
)

// TaxCategoryRef is the tax rule captured on a line item at add-time.
// It is a copy of the catalog category; later catalog edits do not
// retroactively affect items already in the cart.
type TaxCategoryRef struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"name"`
	Percentage float64      `json:"percentage"`
	TaxType    enum.TaxType `json:"taxType"`
}

// LineItem is one product line in the cart. Price and tax info are captured
// when the product is added.
type LineItem struct {
	ProductID    uuid.UUID       `json:"productId"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	SellingPrice float64         `json:"sellingPrice"`
	Quantity     int             `json:"quantity"`
	TaxExempt    bool            `json:"taxExempt"`
	TaxCategory  *TaxCategoryRef `json:"taxCategory,omitempty"`
}

// CustomerRef is the loyalty customer attached to the cart.
type CustomerRef struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	LoyaltyPoints int       `json:"loyaltyPoints"`
}

// Discount is the single cart-wide discount. Replaced wholesale on each
// update, never merged.
type Discount struct {
	Type  enum.DiscountType `json:"type"`
	Value float64           `json:"value"`
}

// HeldOrder is a snapshot of the cart parked for later. The live cart is
// cleared (payment method excepted) the moment the snapshot is taken.
type HeldOrder struct {
	ID       string       `json:"id"`
	Items    []LineItem   `json:"items"`
	Customer *CustomerRef `json:"customer,omitempty"`
	Note     string       `json:"note"`
	Discount Discount     `json:"discount"`
	HeldAt   time.Time    `json:"heldAt"`
}

// Snapshot is an immutable copy of the cart state for readers.
type Snapshot struct {
	Items          []LineItem
	Customer       *CustomerRef
	Note           string
	Discount       Discount
	PaymentMethod  enum.PaymentMethod
	HeldOrders     []HeldOrder
	CurrentOrderID *uuid.UUID
	RedeemedPoints int
}

// Cart is the aggregate for one cashier's checkout session. Items are kept
// in insertion order and are unique by product id: adding an existing
// product increments its quantity instead of duplicating the line.
type Cart struct {
	mu             sync.Mutex
	items          []LineItem
	customer       *CustomerRef
	note           string
	discount       Discount
	paymentMethod  enum.PaymentMethod
	heldOrders     []HeldOrder
	currentOrderID *uuid.UUID

	// redeemedPoints tracks loyalty points already deducted from the
	// customer for the in-flight checkout, so a retry after a failed
	// order creation does not redeem them twice.
	redeemedPoints int
}

// New returns an empty cart with the default payment method (cash) and a
// zero percentage discount.
func New() *Cart {
	return &Cart{
		discount:      Discount{Type: enum.DiscountPercentage, Value: 0},
		paymentMethod: enum.PaymentCash,
	}
}

// AddItem adds a product line. If the product is already in the cart its
// quantity is incremented by the incoming quantity; otherwise the line is
// appended. A non-positive incoming quantity counts as 1, so an add
// without an explicit quantity bumps the existing line by exactly 1.
func (c *Cart) AddItem(item LineItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	qty := item.Quantity
	if qty < 1 {
		qty = 1
	}
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity += qty
			return
		}
	}
	item.Quantity = qty
	c.items = append(c.items, item)
}

// UpdateQuantity sets an item's quantity exactly. A quantity of zero or
// less removes the item.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem removes an item by product id. No-op if absent.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID uuid.UUID) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetCustomer attaches (or detaches, with nil) the loyalty customer.
func (c *Cart) SetCustomer(customer *CustomerRef) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customer = customer
}

// SetNote replaces the order note.
func (c *Cart) SetNote(note string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.note = note
}

// SetDiscount replaces the cart-wide discount.
func (c *Cart) SetDiscount(discount Discount) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.discount = discount
}

// SetPaymentMethod replaces the payment method.
func (c *Cart) SetPaymentMethod(method enum.PaymentMethod) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paymentMethod = method
}

// Clear resets the cart to its initial state. Held orders survive.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked(true)
}

// ResetOrder is the post-checkout reset; identical to Clear.
func (c *Cart) ResetOrder() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked(true)
}

func (c *Cart) resetLocked(resetPayment bool) {
	c.items = nil
	c.customer = nil
	c.note = ""
	c.discount = Discount{Type: enum.DiscountPercentage, Value: 0}
	if resetPayment {
		c.paymentMethod = enum.PaymentCash
		c.currentOrderID = nil
	}
	c.redeemedPoints = 0
}

// SetCurrentOrder records the id of the order created from this cart.
func (c *Cart) SetCurrentOrder(orderID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := orderID
	c.currentOrderID = &id
}

// Hold parks the current cart as a held order and clears the working state.
// The payment method is preserved, unlike a full reset. Holding an empty
// cart is a no-op and returns an empty id.
func (c *Cart) Hold() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return ""
	}

	now := time.Now()
	held := HeldOrder{
		ID:       strconv.FormatInt(now.UnixNano(), 10),
		Items:    cloneItems(c.items),
		Customer: cloneCustomer(c.customer),
		Note:     c.note,
		Discount: c.discount,
		HeldAt:   now,
	}
	c.heldOrders = append(c.heldOrders, held)
	c.resetLocked(false)
	return held.ID
}

// Resume restores a held order into the live cart and removes it from the
// held set. The live cart is left untouched when the id is unknown.
func (c *Cart) Resume(heldOrderID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.heldOrders {
		if c.heldOrders[i].ID == heldOrderID {
			held := c.heldOrders[i]
			c.items = cloneItems(held.Items)
			c.customer = cloneCustomer(held.Customer)
			c.note = held.Note
			c.discount = held.Discount
			c.redeemedPoints = 0
			c.heldOrders = append(c.heldOrders[:i], c.heldOrders[i+1:]...)
			return nil
		}
	}
	return ErrHeldOrderNotFound
}

// MarkPointsRedeemed records that points were already deducted for the
// in-flight checkout.
func (c *Cart) MarkPointsRedeemed(points int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.redeemedPoints = points
}

// Snapshot returns a deep copy of the cart state.
func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Items:          cloneItems(c.items),
		Customer:       cloneCustomer(c.customer),
		Note:           c.note,
		Discount:       c.discount,
		PaymentMethod:  c.paymentMethod,
		HeldOrders:     make([]HeldOrder, 0, len(c.heldOrders)),
		RedeemedPoints: c.redeemedPoints,
	}
	for _, h := range c.heldOrders {
		held := h
		held.Items = cloneItems(h.Items)
		held.Customer = cloneCustomer(h.Customer)
		snap.HeldOrders = append(snap.HeldOrders, held)
	}
	if c.currentOrderID != nil {
		id := *c.currentOrderID
		snap.CurrentOrderID = &id
	}
	return snap
}

func cloneItems(items []LineItem) []LineItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].TaxCategory != nil {
			ref := *out[i].TaxCategory
			out[i].TaxCategory = &ref
		}
	}
	return out
}

func cloneCustomer(customer *CustomerRef) *CustomerRef {
	if customer == nil {
		return nil
	}
	ref := *customer
	return &ref
}
