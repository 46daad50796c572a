// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyProgress is one study session: time spent and a 1-5 confidence level.
// Deleting the language removes its sessions; deleting the topic only clears
// the topic reference, the session survives.
type DailyProgress struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	LanguageID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"language_id"`
	TopicID          *uuid.UUID `gorm:"type:uuid;index" json:"topic_id"`
	Date             time.Time  `gorm:"type:date;not null;index" json:"date"`
	Notes            string     `gorm:"not null" json:"notes"`
	TimeSpentMinutes int        `gorm:"not null" json:"time_spent_minutes"`
	Confidence       int        `gorm:"not null;default:3" json:"confidence"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	Language *Language `gorm:"foreignKey:LanguageID;references:ID" json:"-"`
	Topic    *Topic    `gorm:"foreignKey:TopicID;references:ID" json:"-"`
}

func (DailyProgress) TableName() string {
	return "daily_progress"
}

// DailyProgressRequest is the create/update DTO. Date defaults to today.
type DailyProgressRequest struct {
	LanguageID       *uuid.UUID `json:"language_id"`
	NewLanguage      string     `json:"new_language" validate:"omitempty,max=100"`
	TopicID          *uuid.UUID `json:"topic_id"`
	Date             string     `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Notes            string     `json:"notes" validate:"required"`
	TimeSpentMinutes int        `json:"time_spent_minutes" validate:"required,gt=0"`
	Confidence       int        `json:"confidence" validate:"omitempty,min=1,max=5"`
}
