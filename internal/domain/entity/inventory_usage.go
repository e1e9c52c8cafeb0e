package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InventoryUsage records consumable product used during treatments,
// for example units of toxin or syringes of filler.
type InventoryUsage struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	LocationID   *uuid.UUID      `gorm:"type:uuid;index" json:"location_id,omitempty"`
	ItemName     string          `gorm:"size:255;not null" json:"item_name"`
	QuantityUsed decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"quantity_used"`
	Unit         string          `gorm:"size:50" json:"unit"`
	UsedOn       time.Time       `gorm:"type:date;not null" json:"used_on"`
	Notes        *string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	User     User            `gorm:"foreignKey:UserID" json:"-"`
	Location *ClinicLocation `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

// BeforeCreate generates a UUID before creating a new usage record
func (u *InventoryUsage) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventoryUsage model
func (InventoryUsage) TableName() string {
	return "inventory_usage"
}
