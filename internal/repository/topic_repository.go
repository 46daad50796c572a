package repository

import (
	"context"
	"fmt"

	"learning_tracker/internal/middleware"
	"learning_tracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TopicRepository struct {
	*OwnedRepository[model.Topic]
}

func NewTopicRepository() *TopicRepository {
	return &TopicRepository{OwnedRepository: NewOwnedRepository[model.Topic]()}
}

// DeleteByLanguage removes every topic of a language. Part of the language
// delete cascade.
func (r *TopicRepository) DeleteByLanguage(ctx context.Context, tx *gorm.DB, userID, languageID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ? AND language_id = ?", userID, languageID).Delete(&model.Topic{})
	if result.Error != nil {
		logger.Error("Error deleting topics by language in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"language_id", languageID.String(),
		)
		return fmt.Errorf("TopicRepository.DeleteByLanguage: %w", result.Error)
	}
	return nil
}
