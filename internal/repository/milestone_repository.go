package repository

import (
	"context"
	"fmt"

	"learning_tracker/internal/middleware"
	"learning_tracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MilestoneRepository struct {
	*OwnedRepository[model.Milestone]
}

func NewMilestoneRepository() *MilestoneRepository {
	return &MilestoneRepository{OwnedRepository: NewOwnedRepository[model.Milestone]()}
}

// FindRecentCompleted returns up to limit completed milestones, most recently
// achieved first. Ties on the achievement date keep insertion order.
func (r *MilestoneRepository) FindRecentCompleted(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.Milestone, error) {
	logger := middleware.GetLogger(ctx)
	var milestones []*model.Milestone
	result := db.WithContext(ctx).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Order("date_created DESC, created_at ASC").
		Limit(limit).
		Find(&milestones)
	if result.Error != nil {
		logger.Error("Error finding recent completed milestones in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("MilestoneRepository.FindRecentCompleted: %w", result.Error)
	}
	return milestones, nil
}

// DeleteByLanguage removes every milestone of a language. Part of the
// language delete cascade.
func (r *MilestoneRepository) DeleteByLanguage(ctx context.Context, tx *gorm.DB, userID, languageID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ? AND language_id = ?", userID, languageID).Delete(&model.Milestone{})
	if result.Error != nil {
		logger.Error("Error deleting milestones by language in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"language_id", languageID.String(),
		)
		return fmt.Errorf("MilestoneRepository.DeleteByLanguage: %w", result.Error)
	}
	return nil
}
