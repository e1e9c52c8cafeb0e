package entity

import (
	"time"

	"github.com/chc-hub/api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Discount represents a staff-managed promotion that can be attached to a
// quote. The pricing engine reads only DiscountType and DiscountValue.
type Discount struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Name          string            `gorm:"size:255;not null" json:"name"`
	Description   *string           `gorm:"type:text" json:"description,omitempty"`
	DiscountType  enum.DiscountType `gorm:"default:0" json:"discount_type"`
	DiscountValue decimal.Decimal   `gorm:"type:decimal(15,2);default:0" json:"discount_value"`
	Active        bool              `gorm:"default:true" json:"active"`
	ValidUntil    *time.Time        `json:"valid_until,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Quotes []Quote `gorm:"foreignKey:DiscountID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new discount
func (d *Discount) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Discount model
func (Discount) TableName() string {
	return "discounts"
}

// IsExpired checks whether the discount's validity window has passed
func (d *Discount) IsExpired() bool {
	return d.ValidUntil != nil && time.Now().After(*d.ValidUntil)
}
