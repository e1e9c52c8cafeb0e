package entity

import (
	"time"

	"github.com/chc-hub/api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Referral represents an inbound patient referral tracked by the front desk
type Referral struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	PatientName string              `gorm:"size:255;not null" json:"patient_name"`
	Email       *string             `gorm:"size:255" json:"email,omitempty"`
	Phone       *string             `gorm:"size:50" json:"phone,omitempty"`
	Source      *string             `gorm:"size:255" json:"source,omitempty"`
	Status      enum.ReferralStatus `gorm:"default:0" json:"status"`
	Notes       *string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	DeletedAt   gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new referral
func (r *Referral) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Referral model
func (Referral) TableName() string {
	return "referrals"
}
