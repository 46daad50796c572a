// internal/service/milestone_service.go
package service

import (
	"context"

	"learning_tracker/internal/model"
	"learning_tracker/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewMilestoneService builds the milestone CRUD service. DateCreated is
// stamped once in Build and never appears in an update map.
func NewMilestoneService(
	db *gorm.DB,
	milestones *repository.MilestoneRepository,
	resolver *LanguageResolver,
) *CrudService[model.Milestone, model.MilestoneRequest] {
	desc := EntityDescriptor[model.Milestone, model.MilestoneRequest]{
		Name:      "milestone",
		ListOrder: "created_at ASC",

		Build: func(ctx context.Context, tx *gorm.DB, userID uuid.UUID, req *model.MilestoneRequest) (*model.Milestone, error) {
			language, err := resolver.Resolve(ctx, tx, userID, req.LanguageID, req.NewLanguage)
			if err != nil {
				return nil, err
			}
			return &model.Milestone{
				ID:          uuid.New(),
				UserID:      userID,
				LanguageID:  language.ID,
				Title:       req.Title,
				Details:     req.Details,
				IsCompleted: req.IsCompleted,
				DateCreated: today(),
			}, nil
		},

		Apply: func(ctx context.Context, tx *gorm.DB, userID uuid.UUID, current *model.Milestone, req *model.MilestoneRequest) (map[string]interface{}, error) {
			language, err := resolver.Resolve(ctx, tx, userID, req.LanguageID, req.NewLanguage)
			if err != nil {
				return nil, err
			}
			return map[string]interface{}{
				"language_id":  language.ID,
				"title":        req.Title,
				"details":      req.Details,
				"is_completed": req.IsCompleted,
			}, nil
		},
	}
	return NewCrudService(db, milestones.OwnedRepository, desc)
}
