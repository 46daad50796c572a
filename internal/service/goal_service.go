// internal/service/goal_service.go
package service

import (
	"context"

	"learning_tracker/internal/model"
	"learning_tracker/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewGoalService builds the goal CRUD service. Goals stand alone; no language
// resolution and no cascade.
func NewGoalService(db *gorm.DB, goals *repository.GoalRepository) *CrudService[model.Goal, model.GoalRequest] {
	desc := EntityDescriptor[model.Goal, model.GoalRequest]{
		Name:      "goal",
		ListOrder: "created_at ASC",

		Build: func(ctx context.Context, tx *gorm.DB, userID uuid.UUID, req *model.GoalRequest) (*model.Goal, error) {
			targetDate, err := parseDate(req.TargetDate, "target_date")
			if err != nil {
				return nil, err
			}
			return &model.Goal{
				ID:          uuid.New(),
				UserID:      userID,
				Title:       req.Title,
				Details:     req.Details,
				TargetDate:  targetDate,
				IsCompleted: req.IsCompleted,
			}, nil
		},

		Apply: func(ctx context.Context, tx *gorm.DB, userID uuid.UUID, current *model.Goal, req *model.GoalRequest) (map[string]interface{}, error) {
			targetDate, err := parseDate(req.TargetDate, "target_date")
			if err != nil {
				return nil, err
			}
			return map[string]interface{}{
				"title":        req.Title,
				"details":      req.Details,
				"target_date":  targetDate,
				"is_completed": req.IsCompleted,
			}, nil
		},
	}
	return NewCrudService(db, goals.OwnedRepository, desc)
}
