// internal/model/language.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Language is a programming language or skill a user is learning.
// The name is unique per owner, not globally.
type Language struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_user_language_name" json:"-"`
	Name        string     `gorm:"not null;uniqueIndex:uq_user_language_name" json:"name"`
	Description string     `json:"description"`
	Difficulty  Difficulty `gorm:"type:varchar(20);not null;default:Beginner" json:"difficulty"`
	DateStarted time.Time  `gorm:"type:date;not null" json:"date_started"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Language) TableName() string {
	return "languages"
}

// LanguageRequest is the create/update DTO.
type LanguageRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	DateStarted string `json:"date_started" validate:"omitempty,datetime=2006-01-02"`
}
