package request

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveInventoryUsageRequest represents a create or update usage request
type SaveInventoryUsageRequest struct {
	LocationID   *string         `json:"location_id" binding:"omitempty,uuid"`
	ItemName     string          `json:"item_name" binding:"required"`
	QuantityUsed decimal.Decimal `json:"quantity_used"`
	Unit         string          `json:"unit"`
	UsedOn       time.Time       `json:"used_on" binding:"required"`
	Notes        *string         `json:"notes"`
}

// SaveReferralRequest represents a create or update referral request
type SaveReferralRequest struct {
	PatientName string  `json:"patient_name" binding:"required"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	Source      *string `json:"source"`
	Notes       *string `json:"notes"`
}

// UpdateReferralStatusRequest represents a referral status change request
type UpdateReferralStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending contacted converted declined"`
}
