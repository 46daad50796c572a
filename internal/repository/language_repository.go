// internal/repository/language_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"learning_tracker/internal/middleware"
	"learning_tracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LanguageRepository struct {
	*OwnedRepository[model.Language]
}

func NewLanguageRepository() *LanguageRepository {
	return &LanguageRepository{OwnedRepository: NewOwnedRepository[model.Language]()}
}

// FindByName looks up a language by exact, case-sensitive name.
func (r *LanguageRepository) FindByName(ctx context.Context, db *gorm.DB, userID uuid.UUID, name string) (*model.Language, error) {
	logger := middleware.GetLogger(ctx)
	var language model.Language
	result := db.WithContext(ctx).Where("user_id = ? AND name = ?", userID, name).First(&language)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding language by name in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"name", name,
		)
		return nil, fmt.Errorf("LanguageRepository.FindByName: %w", result.Error)
	}
	return &language, nil
}

// GetOrCreateByName resolves name to exactly one language record for userID,
// creating one with default difficulty and today's start date when the name is
// new. Concurrent submissions of the same new name are serialized by the
// (user_id, name) unique index: the insert is ON CONFLICT DO NOTHING, and a
// losing writer re-reads the winner's row.
func (r *LanguageRepository) GetOrCreateByName(ctx context.Context, tx *gorm.DB, userID uuid.UUID, name string) (*model.Language, error) {
	logger := middleware.GetLogger(ctx)

	language, err := r.FindByName(ctx, tx, userID, name)
	if err == nil {
		return language, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	language = &model.Language{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Difficulty:  model.DifficultyBeginner,
		DateStarted: time.Now().Truncate(24 * time.Hour),
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
		DoNothing: true,
	}).Create(language)
	if result.Error != nil {
		logger.Error("Error creating language in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"name", name,
		)
		return nil, fmt.Errorf("LanguageRepository.GetOrCreateByName: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Lost the race: another request inserted this name first.
		return r.FindByName(ctx, tx, userID, name)
	}
	return language, nil
}
