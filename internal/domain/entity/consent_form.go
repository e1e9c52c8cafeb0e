package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConsentForm represents a versioned consent document patients sign before
// treatment
type ConsentForm struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title             string         `gorm:"size:255;not null" json:"title"`
	Slug              string         `gorm:"size:255;unique;not null" json:"slug"`
	Body              string         `gorm:"type:text" json:"body"`
	Version           int            `gorm:"default:1" json:"version"`
	RequiresSignature bool           `gorm:"default:true" json:"requires_signature"`
	Active            bool           `gorm:"default:true" json:"active"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new consent form
func (f *ConsentForm) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ConsentForm model
func (ConsentForm) TableName() string {
	return "consent_forms"
}
