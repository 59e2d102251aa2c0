package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// TaxCategory represents a named tax rule, e.g. "Standard Rate" (18%,
// EXCLUSIVE) or "Reduced Rate" (5%, EXCLUSIVE). Products reference a
// category; items without one fall back to the branch default rate.
type TaxCategory struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BranchID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"branch_id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Percentage  float64        `gorm:"not null" json:"percentage"`
	TaxType     enum.TaxType   `gorm:"default:0" json:"taxType"`
	IsActive    bool           `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Branch   Branch    `gorm:"foreignKey:BranchID" json:"-"`
	Products []Product `gorm:"foreignKey:TaxCategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new tax category
func (t *TaxCategory) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TaxCategory model
func (TaxCategory) TableName() string {
	return "tax_categories"
}
