package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PricingItem represents a catalog entry staff can add to a quote
type PricingItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Slug        string         `gorm:"size:255;unique;not null" json:"slug"`
	Category    *string        `gorm:"size:255" json:"category,omitempty"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Taxable     bool           `gorm:"default:false" json:"taxable"`
	ImageURL    *string        `gorm:"size:512" json:"image_url,omitempty"`
	Active      bool           `gorm:"default:true" json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Tiers []PricingTier `gorm:"foreignKey:PricingItemID" json:"tiers,omitempty"`
}

// BeforeCreate generates a UUID before creating a new pricing item
func (p *PricingItem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PricingItem model
func (PricingItem) TableName() string {
	return "pricing_items"
}

// PricingTier represents one package/price point of a pricing item,
// for example "Single Session" vs "Package of 6".
type PricingTier struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PricingItemID uuid.UUID       `gorm:"type:uuid;not null;index" json:"pricing_item_id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Price         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"price"`
	Sessions      int             `gorm:"default:1" json:"sessions"`
	SortOrder     int             `gorm:"default:0" json:"sort_order"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Relationships
	PricingItem PricingItem `gorm:"foreignKey:PricingItemID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new pricing tier
func (t *PricingTier) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PricingTier model
func (PricingTier) TableName() string {
	return "pricing_tiers"
}
