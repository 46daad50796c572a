package repository

import (
	"context"
	"fmt"

	"learning_tracker/internal/middleware"
	"learning_tracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResourceRepository struct {
	*OwnedRepository[model.Resource]
}

func NewResourceRepository() *ResourceRepository {
	return &ResourceRepository{OwnedRepository: NewOwnedRepository[model.Resource]()}
}

// DeleteByLanguage removes every resource of a language. Part of the language
// delete cascade.
func (r *ResourceRepository) DeleteByLanguage(ctx context.Context, tx *gorm.DB, userID, languageID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ? AND language_id = ?", userID, languageID).Delete(&model.Resource{})
	if result.Error != nil {
		logger.Error("Error deleting resources by language in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"language_id", languageID.String(),
		)
		return fmt.Errorf("ResourceRepository.DeleteByLanguage: %w", result.Error)
	}
	return nil
}
