// internal/model/goal.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Goal is a learning goal with a target date. Standalone, no language link.
type Goal struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Title       string    `gorm:"not null" json:"title"`
	Details     string    `json:"details"`
	TargetDate  time.Time `gorm:"type:date;not null;index" json:"target_date"`
	IsCompleted bool      `gorm:"not null;default:false" json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Goal) TableName() string {
	return "goals"
}

type GoalRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Details     string `json:"details"`
	TargetDate  string `json:"target_date" validate:"required,datetime=2006-01-02"`
	IsCompleted bool   `json:"is_completed"`
}
