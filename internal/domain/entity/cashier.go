package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cashier represents a till operator who can log in and take orders.
type Cashier struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BranchID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"branch_id"`
	FullName  string         `gorm:"size:255;not null" json:"full_name"`
	Email     string         `gorm:"size:255;unique;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:50;default:'cashier'" json:"role"` // "cashier" or "admin"
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Branch Branch  `gorm:"foreignKey:BranchID" json:"-"`
	Orders []Order `gorm:"foreignKey:CashierID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new cashier
func (c *Cashier) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Cashier model
func (Cashier) TableName() string {
	return "cashiers"
}

// IsAdmin reports whether the cashier has the admin role.
func (c *Cashier) IsAdmin() bool {
	return c.Role == "admin"
}
