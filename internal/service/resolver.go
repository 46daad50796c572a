// internal/service/resolver.go
package service

import (
	"context"
	"strings"

	"learning_tracker/internal/model"
	"learning_tracker/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LanguageResolver turns the "select a language or type a new one" form input
// into exactly one language record. Shared by the topic, progress, resource
// and milestone flows.
type LanguageResolver struct {
	languages *repository.LanguageRepository
}

func NewLanguageResolver(languages *repository.LanguageRepository) *LanguageResolver {
	return &LanguageResolver{languages: languages}
}

// Resolve applies the resolution rule:
//  1. an explicit language id wins (free text, if also present, is ignored);
//     a reference to a missing or foreign record fails as not found;
//  2. otherwise a non-empty name is looked up case-sensitively and created on
//     a miss (difficulty Beginner, started today);
//  3. with neither input, validation fails before anything is persisted.
func (rv *LanguageResolver) Resolve(ctx context.Context, tx *gorm.DB, userID uuid.UUID, languageID *uuid.UUID, newLanguage string) (*model.Language, error) {
	if languageID != nil {
		return rv.languages.FindByID(ctx, tx, userID, *languageID)
	}

	name := strings.TrimSpace(newLanguage)
	if name == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "Please select a language or add a new one.", "language_id", model.ErrInvalidInput)
	}

	return rv.languages.GetOrCreateByName(ctx, tx, userID, name)
}
