// internal/model/milestone.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Milestone is a notable achievement in learning a language.
// DateCreated is stamped once at creation and never updated afterwards.
type Milestone struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	LanguageID  uuid.UUID `gorm:"type:uuid;not null;index" json:"language_id"`
	Title       string    `gorm:"not null" json:"title"`
	Details     string    `json:"details"`
	IsCompleted bool      `gorm:"not null;default:false" json:"is_completed"`
	DateCreated time.Time `gorm:"type:date;not null" json:"date_created"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Language *Language `gorm:"foreignKey:LanguageID;references:ID" json:"-"`
}

func (Milestone) TableName() string {
	return "milestones"
}

type MilestoneRequest struct {
	LanguageID  *uuid.UUID `json:"language_id"`
	NewLanguage string     `json:"new_language" validate:"omitempty,max=100"`
	Title       string     `json:"title" validate:"required,max=200"`
	Details     string     `json:"details"`
	IsCompleted bool       `json:"is_completed"`
}
