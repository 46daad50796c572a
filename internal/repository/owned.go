// internal/repository/owned.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"learning_tracker/internal/middleware"
	"learning_tracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedRepository is the single implementation of the ownership rule: every
// read, update and delete is constrained by user_id, and a record that exists
// but belongs to someone else is indistinguishable from one that does not
// exist (ErrNotFound, never ErrForbidden). Each entity type instantiates it
// with its own model.
type OwnedRepository[T any] struct{}

func NewOwnedRepository[T any]() *OwnedRepository[T] {
	return &OwnedRepository[T]{}
}

func (r *OwnedRepository[T]) Create(ctx context.Context, tx *gorm.DB, record *T) error {
	logger := middleware.GetLogger(ctx)
	if result := tx.WithContext(ctx).Create(record); result.Error != nil {
		if !IsDuplicateKey(result.Error) {
			logger.Error("Error creating record in DB", "error", result.Error)
		}
		return fmt.Errorf("OwnedRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *OwnedRepository[T]) FindByID(ctx context.Context, db *gorm.DB, userID, id uuid.UUID) (*T, error) {
	logger := middleware.GetLogger(ctx)
	var record T
	result := db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding record by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"id", id.String(),
		)
		return nil, fmt.Errorf("OwnedRepository.FindByID: %w", result.Error)
	}
	return &record, nil
}

func (r *OwnedRepository[T]) List(ctx context.Context, db *gorm.DB, userID uuid.UUID, order string) ([]*T, error) {
	logger := middleware.GetLogger(ctx)
	var records []*T
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order(order).Find(&records)
	if result.Error != nil {
		logger.Error("Error listing records in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("OwnedRepository.List: %w", result.Error)
	}
	return records, nil
}

func (r *OwnedRepository[T]) CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var record T
	var count int64
	result := db.WithContext(ctx).Model(&record).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting records in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("OwnedRepository.CountByUser: %w", result.Error)
	}
	return count, nil
}

func (r *OwnedRepository[T]) Updates(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	var record T
	result := tx.WithContext(ctx).Model(&record).Where("user_id = ? AND id = ?", userID, id).Updates(updates)
	if result.Error != nil {
		if !IsDuplicateKey(result.Error) {
			logger.Error("Error updating record in DB",
				"error", result.Error,
				"user_id", userID.String(),
				"id", id.String(),
			)
		}
		return fmt.Errorf("OwnedRepository.Updates: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *OwnedRepository[T]) Delete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	var record T
	result := tx.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&record)
	if result.Error != nil {
		logger.Error("Error deleting record in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"id", id.String(),
		)
		return fmt.Errorf("OwnedRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
