// internal/service/resource_service.go
package service

import (
	"context"

	"learning_tracker/internal/model"
	"learning_tracker/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewResourceService builds the learning-resource CRUD service.
func NewResourceService(
	db *gorm.DB,
	resources *repository.ResourceRepository,
	resolver *LanguageResolver,
) *CrudService[model.Resource, model.ResourceRequest] {
	desc := EntityDescriptor[model.Resource, model.ResourceRequest]{
		Name:      "resource",
		ListOrder: "created_at ASC",

		Build: func(ctx context.Context, tx *gorm.DB, userID uuid.UUID, req *model.ResourceRequest) (*model.Resource, error) {
			language, err := resolver.Resolve(ctx, tx, userID, req.LanguageID, req.NewLanguage)
			if err != nil {
				return nil, err
			}
			resourceType := model.ResourceArticle
			if req.ResourceType != "" {
				resourceType = model.ResourceType(req.ResourceType)
			}
			return &model.Resource{
				ID:           uuid.New(),
				UserID:       userID,
				LanguageID:   language.ID,
				Title:        req.Title,
				Link:         req.Link,
				ResourceType: resourceType,
			}, nil
		},

		Apply: func(ctx context.Context, tx *gorm.DB, userID uuid.UUID, current *model.Resource, req *model.ResourceRequest) (map[string]interface{}, error) {
			language, err := resolver.Resolve(ctx, tx, userID, req.LanguageID, req.NewLanguage)
			if err != nil {
				return nil, err
			}
			updates := map[string]interface{}{
				"language_id": language.ID,
				"title":       req.Title,
				"link":        req.Link,
			}
			if req.ResourceType != "" {
				updates["resource_type"] = model.ResourceType(req.ResourceType)
			}
			return updates, nil
		},
	}
	return NewCrudService(db, resources.OwnedRepository, desc)
}
