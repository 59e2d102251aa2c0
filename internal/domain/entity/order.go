package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a finalized sale created by the checkout flow.
type Order struct {
	ID                uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo         string             `gorm:"size:100;unique;not null" json:"invoice_no"`
	BranchID          uuid.UUID          `gorm:"type:uuid;not null;index" json:"branchId"`
	CashierID         uuid.UUID          `gorm:"type:uuid;not null;index" json:"cashierId"`
	CustomerID        *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Status            enum.OrderStatus   `gorm:"default:0" json:"status"`
	TotalAmount       int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	SubTotal          int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Tax               int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Discount          int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	LoyaltyPointsUsed int                `gorm:"default:0" json:"loyaltyPointsUsed"`
	PaymentType       enum.PaymentMethod `gorm:"default:0" json:"paymentType"`
	Note              string             `gorm:"type:text" json:"note"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	DeletedAt         gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Branch       Branch              `gorm:"foreignKey:BranchID" json:"-"`
	Cashier      Cashier             `gorm:"foreignKey:CashierID" json:"-"`
	Customer     *Customer           `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items        []OrderItem         `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	TaxBreakdown []OrderTaxBreakdown `gorm:"foreignKey:OrderID" json:"taxBreakdown,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		TotalAmount float64 `json:"totalAmount"`
		SubTotal    float64 `json:"subtotal"`
		Tax         float64 `json:"tax"`
		Discount    float64 `json:"discount"`
	}{
		Alias:       Alias(o),
		TotalAmount: float64(o.TotalAmount) / 100,
		SubTotal:    float64(o.SubTotal) / 100,
		Tax:         float64(o.Tax) / 100,
		Discount:    float64(o.Discount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// GetTotalDecimal returns the total as a decimal
func (o *Order) GetTotalDecimal() float64 {
	return float64(o.TotalAmount) / 100
}

// OrderItem represents a line item in a finalized order.
type OrderItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;index" json:"productId"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	Price     int64          `gorm:"not null" json:"-"` // Unit price in cents, excluded from JSON
	Total     int64          `gorm:"not null" json:"-"` // Line total in cents, excluded from JSON
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
		Total float64 `json:"total"`
	}{
		Alias: Alias(oi),
		Price: float64(oi.Price) / 100,
		Total: float64(oi.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderTaxBreakdown persists one row per distinct tax rule applied to an
// order, mirroring the breakdown shown on the receipt.
type OrderTaxBreakdown struct {
	ID         uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"order_id"`
	Name       string       `gorm:"size:255;not null" json:"name"`
	Percentage float64      `gorm:"not null" json:"percentage"`
	TaxType    enum.TaxType `gorm:"default:0" json:"taxType"`
	SubTotal   int64        `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	TaxAmount  int64        `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt  time.Time    `json:"created_at"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (tb OrderTaxBreakdown) MarshalJSON() ([]byte, error) {
	type Alias OrderTaxBreakdown
	return json.Marshal(&struct {
		Alias
		SubTotal  float64 `json:"subtotal"`
		TaxAmount float64 `json:"taxAmount"`
	}{
		Alias:     Alias(tb),
		SubTotal:  float64(tb.SubTotal) / 100,
		TaxAmount: float64(tb.TaxAmount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new breakdown row
func (tb *OrderTaxBreakdown) BeforeCreate(tx *gorm.DB) error {
	if tb.ID == uuid.Nil {
		tb.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderTaxBreakdown model
func (OrderTaxBreakdown) TableName() string {
	return "order_tax_breakdowns"
}
