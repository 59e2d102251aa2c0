package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Branch represents a store branch. Its tax percentage is the default
// rate applied to products without an explicit tax category.
type Branch struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Address       *string        `gorm:"type:text" json:"address,omitempty"`
	Phone         *string        `gorm:"size:50" json:"phone,omitempty"`
	Email         *string        `gorm:"size:255" json:"email,omitempty"`
	TaxPercentage float64        `gorm:"default:18" json:"taxPercentage"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Cashiers      []Cashier     `gorm:"foreignKey:BranchID" json:"-"`
	Orders        []Order       `gorm:"foreignKey:BranchID" json:"-"`
	TaxCategories []TaxCategory `gorm:"foreignKey:BranchID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new branch
func (b *Branch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Branch model
func (Branch) TableName() string {
	return "branches"
}
