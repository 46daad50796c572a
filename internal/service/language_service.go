// internal/service/language_service.go
package service

import (
	"context"

	"learning_tracker/internal/model"
	"learning_tracker/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewLanguageService builds the language CRUD service. Deleting a language
// cascades to its progress entries, resources, milestones and topics in the
// same transaction.
func NewLanguageService(
	db *gorm.DB,
	languages *repository.LanguageRepository,
	topics *repository.TopicRepository,
	progress *repository.ProgressRepository,
	resources *repository.ResourceRepository,
	milestones *repository.MilestoneRepository,
) *CrudService[model.Language, model.LanguageRequest] {
	desc := EntityDescriptor[model.Language, model.LanguageRequest]{
		Name:      "language",
		ListOrder: "created_at ASC",

		Build: func(ctx context.Context, tx *gorm.DB, userID uuid.UUID, req *model.LanguageRequest) (*model.Language, error) {
			started, err := parseDateOrToday(req.DateStarted, "date_started")
			if err != nil {
				return nil, err
			}
			difficulty := model.DifficultyBeginner
			if req.Difficulty != "" {
				difficulty = model.Difficulty(req.Difficulty)
			}
			return &model.Language{
				ID:          uuid.New(),
				UserID:      userID,
				Name:        req.Name,
				Description: req.Description,
				Difficulty:  difficulty,
				DateStarted: started,
			}, nil
		},

		Apply: func(ctx context.Context, tx *gorm.DB, userID uuid.UUID, current *model.Language, req *model.LanguageRequest) (map[string]interface{}, error) {
			updates := map[string]interface{}{
				"name":        req.Name,
				"description": req.Description,
			}
			if req.Difficulty != "" {
				updates["difficulty"] = model.Difficulty(req.Difficulty)
			}
			if req.DateStarted != "" {
				started, err := parseDate(req.DateStarted, "date_started")
				if err != nil {
					return nil, err
				}
				updates["date_started"] = started
			}
			return updates, nil
		},

		BeforeDelete: func(ctx context.Context, tx *gorm.DB, userID uuid.UUID, current *model.Language) error {
			if err := progress.DeleteByLanguage(ctx, tx, userID, current.ID); err != nil {
				return err
			}
			if err := resources.DeleteByLanguage(ctx, tx, userID, current.ID); err != nil {
				return err
			}
			if err := milestones.DeleteByLanguage(ctx, tx, userID, current.ID); err != nil {
				return err
			}
			return topics.DeleteByLanguage(ctx, tx, userID, current.ID)
		},
	}
	return NewCrudService(db, languages.OwnedRepository, desc)
}
