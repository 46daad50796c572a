// internal/service/progress_service.go
package service

import (
	"context"

	"learning_tracker/internal/model"
	"learning_tracker/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewProgressService builds the daily-progress CRUD service. An optional
// topic reference goes through the ownership filter like any other lookup;
// sessions list newest study date first.
func NewProgressService(
	db *gorm.DB,
	progress *repository.ProgressRepository,
	topics *repository.TopicRepository,
	resolver *LanguageResolver,
) *CrudService[model.DailyProgress, model.DailyProgressRequest] {
	resolveTopicID := func(ctx context.Context, tx *gorm.DB, userID uuid.UUID, topicID *uuid.UUID) (*uuid.UUID, error) {
		if topicID == nil {
			return nil, nil
		}
		topic, err := topics.FindByID(ctx, tx, userID, *topicID)
		if err != nil {
			return nil, err
		}
		return &topic.ID, nil
	}

	desc := EntityDescriptor[model.DailyProgress, model.DailyProgressRequest]{
		Name:      "progress entry",
		ListOrder: "date DESC, created_at DESC",

		Build: func(ctx context.Context, tx *gorm.DB, userID uuid.UUID, req *model.DailyProgressRequest) (*model.DailyProgress, error) {
			language, err := resolver.Resolve(ctx, tx, userID, req.LanguageID, req.NewLanguage)
			if err != nil {
				return nil, err
			}
			topicID, err := resolveTopicID(ctx, tx, userID, req.TopicID)
			if err != nil {
				return nil, err
			}
			date, err := parseDateOrToday(req.Date, "date")
			if err != nil {
				return nil, err
			}
			confidence := req.Confidence
			if confidence == 0 {
				confidence = 3
			}
			return &model.DailyProgress{
				ID:               uuid.New(),
				UserID:           userID,
				LanguageID:       language.ID,
				TopicID:          topicID,
				Date:             date,
				Notes:            req.Notes,
				TimeSpentMinutes: req.TimeSpentMinutes,
				Confidence:       confidence,
			}, nil
		},

		Apply: func(ctx context.Context, tx *gorm.DB, userID uuid.UUID, current *model.DailyProgress, req *model.DailyProgressRequest) (map[string]interface{}, error) {
			language, err := resolver.Resolve(ctx, tx, userID, req.LanguageID, req.NewLanguage)
			if err != nil {
				return nil, err
			}
			topicID, err := resolveTopicID(ctx, tx, userID, req.TopicID)
			if err != nil {
				return nil, err
			}
			updates := map[string]interface{}{
				"language_id":        language.ID,
				"topic_id":           topicID,
				"notes":              req.Notes,
				"time_spent_minutes": req.TimeSpentMinutes,
			}
			if req.Date != "" {
				date, err := parseDate(req.Date, "date")
				if err != nil {
					return nil, err
				}
				updates["date"] = date
			}
			if req.Confidence != 0 {
				updates["confidence"] = req.Confidence
			}
			return updates, nil
		},
	}
	return NewCrudService(db, progress.OwnedRepository, desc)
}
