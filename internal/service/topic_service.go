// internal/service/topic_service.go
package service

import (
	"context"

	"learning_tracker/internal/model"
	"learning_tracker/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewTopicService builds the topic CRUD service. The language is resolved
// through the shared resolver; deleting a topic detaches its progress entries
// instead of removing them.
func NewTopicService(
	db *gorm.DB,
	topics *repository.TopicRepository,
	progress *repository.ProgressRepository,
	resolver *LanguageResolver,
) *CrudService[model.Topic, model.TopicRequest] {
	desc := EntityDescriptor[model.Topic, model.TopicRequest]{
		Name:      "topic",
		ListOrder: "created_at ASC",

		Build: func(ctx context.Context, tx *gorm.DB, userID uuid.UUID, req *model.TopicRequest) (*model.Topic, error) {
			language, err := resolver.Resolve(ctx, tx, userID, req.LanguageID, req.NewLanguage)
			if err != nil {
				return nil, err
			}
			return &model.Topic{
				ID:          uuid.New(),
				UserID:      userID,
				LanguageID:  language.ID,
				Name:        req.Name,
				Description: req.Description,
			}, nil
		},

		Apply: func(ctx context.Context, tx *gorm.DB, userID uuid.UUID, current *model.Topic, req *model.TopicRequest) (map[string]interface{}, error) {
			language, err := resolver.Resolve(ctx, tx, userID, req.LanguageID, req.NewLanguage)
			if err != nil {
				return nil, err
			}
			return map[string]interface{}{
				"language_id": language.ID,
				"name":        req.Name,
				"description": req.Description,
			}, nil
		},

		BeforeDelete: func(ctx context.Context, tx *gorm.DB, userID uuid.UUID, current *model.Topic) error {
			return progress.ClearTopic(ctx, tx, userID, current.ID)
		},
	}
	return NewCrudService(db, topics.OwnedRepository, desc)
}
