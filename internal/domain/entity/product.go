package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a sellable product.
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BranchID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"branch_id"`
	TaxCategoryID *uuid.UUID     `gorm:"type:uuid;index" json:"tax_category_id,omitempty"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	SKU           string         `gorm:"size:100;unique;not null" json:"sku"`
	SellingPrice  int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Quantity      int            `gorm:"default:0" json:"quantity"`
	TaxExempt     bool           `gorm:"default:false" json:"taxExempt"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Branch      Branch       `gorm:"foreignKey:BranchID" json:"-"`
	TaxCategory *TaxCategory `gorm:"foreignKey:TaxCategoryID" json:"taxCategory,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		SellingPrice float64 `json:"sellingPrice"`
	}{
		Alias:        Alias(p),
		SellingPrice: float64(p.SellingPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetSellingPriceDecimal returns the selling price as a decimal (for display)
func (p *Product) GetSellingPriceDecimal() float64 {
	return float64(p.SellingPrice) / 100
}

// SetSellingPriceFromDecimal sets the selling price from a decimal value
func (p *Product) SetSellingPriceFromDecimal(price float64) {
	p.SellingPrice = int64(price * 100)
}
