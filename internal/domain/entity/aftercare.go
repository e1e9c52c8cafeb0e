package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AftercareInstruction represents post-treatment care content handed to
// patients after a procedure. Body holds rendered HTML from the editor.
type AftercareInstruction struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Slug        string         `gorm:"size:255;unique;not null" json:"slug"`
	Category    *string        `gorm:"size:255" json:"category,omitempty"`
	Body        string         `gorm:"type:text" json:"body"`
	Attachments StringList     `gorm:"type:jsonb" json:"attachments,omitempty"`
	Published   bool           `gorm:"default:false" json:"published"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new instruction
func (a *AftercareInstruction) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AftercareInstruction model
func (AftercareInstruction) TableName() string {
	return "aftercare_instructions"
}
