package repository

import (
	"context"
	"fmt"

	"learning_tracker/internal/middleware"
	"learning_tracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalRepository struct {
	*OwnedRepository[model.Goal]
}

func NewGoalRepository() *GoalRepository {
	return &GoalRepository{OwnedRepository: NewOwnedRepository[model.Goal]()}
}

// FindUpcoming returns up to limit incomplete goals, nearest target date
// first. Ties on the target date keep insertion order.
func (r *GoalRepository) FindUpcoming(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.Goal, error) {
	logger := middleware.GetLogger(ctx)
	var goals []*model.Goal
	result := db.WithContext(ctx).
		Where("user_id = ? AND is_completed = ?", userID, false).
		Order("target_date ASC, created_at ASC").
		Limit(limit).
		Find(&goals)
	if result.Error != nil {
		logger.Error("Error finding upcoming goals in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("GoalRepository.FindUpcoming: %w", result.Error)
	}
	return goals, nil
}
