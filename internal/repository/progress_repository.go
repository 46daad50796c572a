// internal/repository/progress_repository.go
package repository

import (
	"context"
	"fmt"

	"learning_tracker/internal/middleware"
	"learning_tracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressRepository struct {
	*OwnedRepository[model.DailyProgress]
}

func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{OwnedRepository: NewOwnedRepository[model.DailyProgress]()}
}

// SumMinutesByLanguage returns the summed study minutes per language for one
// user, in a single grouped query. Languages without sessions are simply
// absent from the map; the caller fills in zeroes.
func (r *ProgressRepository) SumMinutesByLanguage(ctx context.Context, db *gorm.DB, userID uuid.UUID) (map[uuid.UUID]int64, error) {
	logger := middleware.GetLogger(ctx)

	type languageMinutes struct {
		LanguageID uuid.UUID
		Total      int64
	}
	var rows []languageMinutes
	result := db.WithContext(ctx).Model(&model.DailyProgress{}).
		Select("language_id, SUM(time_spent_minutes) AS total").
		Where("user_id = ?", userID).
		Group("language_id").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error summing study minutes in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("ProgressRepository.SumMinutesByLanguage: %w", result.Error)
	}

	sums := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		sums[row.LanguageID] = row.Total
	}
	return sums, nil
}

// DeleteByLanguage removes every progress entry of a language. Part of the
// language delete cascade.
func (r *ProgressRepository) DeleteByLanguage(ctx context.Context, tx *gorm.DB, userID, languageID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ? AND language_id = ?", userID, languageID).Delete(&model.DailyProgress{})
	if result.Error != nil {
		logger.Error("Error deleting progress entries by language in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"language_id", languageID.String(),
		)
		return fmt.Errorf("ProgressRepository.DeleteByLanguage: %w", result.Error)
	}
	return nil
}

// ClearTopic detaches surviving progress entries from a topic about to be
// deleted; the entries themselves are kept.
func (r *ProgressRepository) ClearTopic(ctx context.Context, tx *gorm.DB, userID, topicID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.DailyProgress{}).
		Where("user_id = ? AND topic_id = ?", userID, topicID).
		Update("topic_id", nil)
	if result.Error != nil {
		logger.Error("Error clearing topic reference on progress entries in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"topic_id", topicID.String(),
		)
		return fmt.Errorf("ProgressRepository.ClearTopic: %w", result.Error)
	}
	return nil
}
