package request

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteLineItemRequest represents one line of a quote
type QuoteLineItemRequest struct {
	Name      string          `json:"name" binding:"required"`
	TierName  string          `json:"tier_name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Taxable   bool            `json:"taxable"`
	Sessions  int             `json:"sessions"`
}

// SaveQuoteRequest represents a create or update quote request. Monetary
// totals are intentionally absent; the server prices every save.
type SaveQuoteRequest struct {
	PatientName  string                 `json:"patient_name" binding:"required"`
	PatientEmail *string                `json:"patient_email" binding:"omitempty,email"`
	LocationID   *string                `json:"location_id" binding:"omitempty,uuid"`
	DiscountID   *string                `json:"discount_id" binding:"omitempty,uuid"`
	ShowTotals   *bool                  `json:"show_totals"`
	Notes        *string                `json:"notes"`
	ValidUntil   *time.Time             `json:"valid_until"`
	LineItems    []QuoteLineItemRequest `json:"line_items"`
}

// UpdateQuoteStatusRequest represents a status change request
type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
