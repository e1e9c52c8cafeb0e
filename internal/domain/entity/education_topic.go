package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EducationTopic represents a patient-education article shown in the hub
type EducationTopic struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	Category  *string        `gorm:"size:255" json:"category,omitempty"`
	Summary   *string        `gorm:"type:text" json:"summary,omitempty"`
	Body      string         `gorm:"type:text" json:"body"`
	ImageURL  *string        `gorm:"size:512" json:"image_url,omitempty"`
	Tags      StringList     `gorm:"type:jsonb" json:"tags,omitempty"`
	Published bool           `gorm:"default:false" json:"published"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new topic
func (e *EducationTopic) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the EducationTopic model
func (EducationTopic) TableName() string {
	return "education_topics"
}
