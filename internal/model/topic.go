// internal/model/topic.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a concept studied within a language (e.g. "Functions" in Python).
// Topics are removed together with their language.
type Topic struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	LanguageID  uuid.UUID `gorm:"type:uuid;not null;index" json:"language_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Language *Language `gorm:"foreignKey:LanguageID;references:ID" json:"-"`
}

func (Topic) TableName() string {
	return "topics"
}

// TopicRequest selects an existing language by id or names a new one.
type TopicRequest struct {
	LanguageID  *uuid.UUID `json:"language_id"`
	NewLanguage string     `json:"new_language" validate:"omitempty,max=100"`
	Name        string     `json:"name" validate:"required,max=200"`
	Description string     `json:"description"`
}
