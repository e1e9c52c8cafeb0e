package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ClinicLocation represents a physical clinic site. Its tax rate feeds the
// quote pricing engine for taxable line items.
type ClinicLocation struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Address   *string         `gorm:"type:text" json:"address,omitempty"`
	City      *string         `gorm:"size:255" json:"city,omitempty"`
	State     *string         `gorm:"size:50" json:"state,omitempty"`
	Zip       *string         `gorm:"size:20" json:"zip,omitempty"`
	Phone     *string         `gorm:"size:50" json:"phone,omitempty"`
	TaxRate   decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"tax_rate"` // percentage points
	Active    bool            `gorm:"default:true" json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Quotes []Quote `gorm:"foreignKey:LocationID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new location
func (l *ClinicLocation) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ClinicLocation model
func (ClinicLocation) TableName() string {
	return "clinic_locations"
}
