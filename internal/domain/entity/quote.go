package entity

import (
	"time"

	"github.com/chc-hub/api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Quote represents a priced treatment quote for a patient. The monetary
// snapshot fields are frozen by the pricing engine at save time; they are
// recomputed on every edit, never incrementally adjusted.
type Quote struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	LocationID   *uuid.UUID       `gorm:"type:uuid;index" json:"location_id,omitempty"`
	DiscountID   *uuid.UUID       `gorm:"type:uuid;index" json:"discount_id,omitempty"`
	Reference    string           `gorm:"size:100;unique;not null" json:"reference"`
	PatientName  string           `gorm:"size:255;not null" json:"patient_name"`
	PatientEmail *string          `gorm:"size:255" json:"patient_email,omitempty"`
	Status       enum.QuoteStatus `gorm:"default:0" json:"status"`
	ShowTotals   bool             `gorm:"default:true" json:"show_totals"`
	Notes        *string          `gorm:"type:text" json:"notes,omitempty"`
	ValidUntil   *time.Time       `json:"valid_until,omitempty"`

	// Pricing snapshot, frozen at save time
	Subtotal       decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	Total          decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User      User            `gorm:"foreignKey:UserID" json:"-"`
	Location  *ClinicLocation `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Discount  *Discount       `gorm:"foreignKey:DiscountID" json:"discount,omitempty"`
	LineItems []QuoteLineItem `gorm:"foreignKey:QuoteID" json:"line_items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quote
func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}

// QuoteLineItem represents a single priced line on a quote. Line items are
// typed rows rather than a serialized blob so the pricing fields stay
// queryable and schema-checked.
type QuoteLineItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	QuoteID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"quote_id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	TierName  string          `gorm:"size:255" json:"tier_name"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	Taxable   bool            `gorm:"default:false" json:"taxable"`
	Sessions  int             `gorm:"default:0" json:"sessions"`
	SortOrder int             `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relationships
	Quote Quote `gorm:"foreignKey:QuoteID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new line item
func (li *QuoteLineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuoteLineItem model
func (QuoteLineItem) TableName() string {
	return "quote_line_items"
}
