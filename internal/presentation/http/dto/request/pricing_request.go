package request

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingTierRequest represents one price point of a catalog item
type PricingTierRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Sessions int             `json:"sessions"`
}

// SavePricingItemRequest represents a create or update catalog item request
type SavePricingItemRequest struct {
	Name        string               `json:"name" binding:"required"`
	Category    *string              `json:"category"`
	Description *string              `json:"description"`
	Taxable     bool                 `json:"taxable"`
	ImageURL    *string              `json:"image_url"`
	Active      *bool                `json:"active"`
	Tiers       []PricingTierRequest `json:"tiers"`
}

// SaveDiscountRequest represents a create or update discount request
type SaveDiscountRequest struct {
	Name          string          `json:"name" binding:"required"`
	Description   *string         `json:"description"`
	DiscountType  string          `json:"discount_type" binding:"required,oneof=percentage fixed_amount bogo"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	Active        *bool           `json:"active"`
	ValidUntil    *time.Time      `json:"valid_until"`
}

// SaveLocationRequest represents a create or update clinic location request
type SaveLocationRequest struct {
	Name    string          `json:"name" binding:"required"`
	Address *string         `json:"address"`
	City    *string         `json:"city"`
	State   *string         `json:"state"`
	Zip     *string         `json:"zip"`
	Phone   *string         `json:"phone"`
	TaxRate decimal.Decimal `json:"tax_rate"`
	Active  *bool           `json:"active"`
}
