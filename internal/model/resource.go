// internal/model/resource.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ResourceType string

const (
	ResourceVideo         ResourceType = "Video"
	ResourceArticle       ResourceType = "Article"
	ResourceBook          ResourceType = "Book"
	ResourceCourse        ResourceType = "Course"
	ResourceDocumentation ResourceType = "Documentation"
	ResourceOther         ResourceType = "Other"
)

// Resource is a learning material (tutorial, article, course, ...) linked to
// one language. Removed together with the language.
type Resource struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID    `gorm:"type:uuid;not null;index" json:"-"`
	LanguageID   uuid.UUID    `gorm:"type:uuid;not null;index" json:"language_id"`
	Title        string       `gorm:"not null" json:"title"`
	Link         string       `gorm:"not null" json:"link"`
	ResourceType ResourceType `gorm:"type:varchar(50);not null;default:Article" json:"resource_type"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	Language *Language `gorm:"foreignKey:LanguageID;references:ID" json:"-"`
}

func (Resource) TableName() string {
	return "resources"
}

type ResourceRequest struct {
	LanguageID   *uuid.UUID `json:"language_id"`
	NewLanguage  string     `json:"new_language" validate:"omitempty,max=100"`
	Title        string     `json:"title" validate:"required,max=200"`
	Link         string     `json:"link" validate:"required,url"`
	ResourceType string     `json:"resource_type" validate:"omitempty,oneof=Video Article Book Course Documentation Other"`
}
