// internal/service/crud.go
package service

import (
	"context"
	"errors"
	"fmt"

	"learning_tracker/internal/middleware"
	"learning_tracker/internal/model"
	"learning_tracker/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntityDescriptor parametrizes the generic CRUD service with everything that
// differs between the six entity types: the list ordering and the hooks that
// construct a record, map an update and run cascade work before a delete.
// Hooks run inside the operation's transaction and may return AppErrors, which
// are surfaced to the client unchanged.
type EntityDescriptor[T any, R any] struct {
	// Name appears in log lines and client-facing messages ("language", ...).
	Name string

	// ListOrder is the ORDER BY clause of the list operation.
	ListOrder string

	// Build validates relational inputs and constructs the new record with
	// its identity and owner stamped.
	Build func(ctx context.Context, tx *gorm.DB, userID uuid.UUID, req *R) (*T, error)

	// Apply maps the request onto column updates for an existing record.
	// Identity fields (id, owner, creation stamps) are never part of the map.
	Apply func(ctx context.Context, tx *gorm.DB, userID uuid.UUID, current *T, req *R) (map[string]interface{}, error)

	// BeforeDelete runs cascade work in the delete transaction. Optional.
	BeforeDelete func(ctx context.Context, tx *gorm.DB, userID uuid.UUID, current *T) error
}

// CrudService is the one CRUD implementation shared by all entity types.
// Ownership scoping comes from the underlying OwnedRepository; this layer adds
// transaction boundaries and the descriptor hooks.
type CrudService[T any, R any] struct {
	db   *gorm.DB
	repo *repository.OwnedRepository[T]
	desc EntityDescriptor[T, R]
}

func NewCrudService[T any, R any](db *gorm.DB, repo *repository.OwnedRepository[T], desc EntityDescriptor[T, R]) *CrudService[T, R] {
	return &CrudService[T, R]{db: db, repo: repo, desc: desc}
}

func (s *CrudService[T, R]) List(ctx context.Context, userID uuid.UUID) ([]*T, error) {
	records, err := s.repo.List(ctx, s.db, userID, s.desc.ListOrder)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing records", "entity", s.desc.Name, "error", err)
		return nil, model.ErrInternalServer
	}
	return records, nil
}

func (s *CrudService[T, R]) Get(ctx context.Context, userID, id uuid.UUID) (*T, error) {
	return s.repo.FindByID(ctx, s.db, userID, id)
}

func (s *CrudService[T, R]) Create(ctx context.Context, userID uuid.UUID, req *R) (*T, error) {
	logger := middleware.GetLogger(ctx)
	var created *T

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := s.desc.Build(ctx, tx, userID, req)
		if err != nil {
			return err
		}
		if err := s.repo.Create(ctx, tx, record); err != nil {
			if repository.IsDuplicateKey(err) {
				return model.NewAppError("DUPLICATE", fmt.Sprintf("A %s with these values already exists.", s.desc.Name), "", model.ErrConflict)
			}
			return err
		}
		created = record
		return nil
	})
	if err != nil {
		if isClientError(err) {
			return nil, err
		}
		logger.Error("Transaction failed for create", "entity", s.desc.Name, "error", err)
		return nil, model.ErrInternalServer
	}
	return created, nil
}

func (s *CrudService[T, R]) Update(ctx context.Context, userID, id uuid.UUID, req *R) (*T, error) {
	logger := middleware.GetLogger(ctx)
	var updated *T

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.repo.FindByID(ctx, tx, userID, id)
		if err != nil {
			return err
		}

		updates, err := s.desc.Apply(ctx, tx, userID, current, req)
		if err != nil {
			return err
		}

		if err := s.repo.Updates(ctx, tx, userID, id, updates); err != nil {
			if repository.IsDuplicateKey(err) {
				return model.NewAppError("DUPLICATE", fmt.Sprintf("A %s with these values already exists.", s.desc.Name), "", model.ErrConflict)
			}
			return err
		}

		updated, err = s.repo.FindByID(ctx, tx, userID, id)
		return err
	})
	if err != nil {
		if isClientError(err) {
			return nil, err
		}
		logger.Error("Transaction failed for update", "entity", s.desc.Name, "error", err)
		return nil, model.ErrInternalServer
	}
	return updated, nil
}

func (s *CrudService[T, R]) Delete(ctx context.Context, userID, id uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.repo.FindByID(ctx, tx, userID, id)
		if err != nil {
			return err
		}
		if s.desc.BeforeDelete != nil {
			if err := s.desc.BeforeDelete(ctx, tx, userID, current); err != nil {
				return err
			}
		}
		return s.repo.Delete(ctx, tx, userID, id)
	})
	if err != nil {
		if isClientError(err) {
			return err
		}
		logger.Error("Transaction failed for delete", "entity", s.desc.Name, "error", err)
		return model.ErrInternalServer
	}
	return nil
}

// isClientError reports whether err should reach the client as-is instead of
// being collapsed into a 500.
func isClientError(err error) bool {
	return errors.Is(err, model.ErrNotFound) ||
		errors.Is(err, model.ErrInvalidInput) ||
		errors.Is(err, model.ErrConflict)
}
