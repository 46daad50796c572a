// internal/handlers/crud_handler.go
package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"learning_tracker/internal/middleware"
	"learning_tracker/internal/model"
	"learning_tracker/internal/service"
	"learning_tracker/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CrudHandler exposes one entity type's list/get/create/update/delete
// endpoints. All six entity types share this implementation; only the service
// descriptor behind it differs.
type CrudHandler[T any, R any] struct {
	service *service.CrudService[T, R]
	name    string
	logger  *slog.Logger
}

func NewCrudHandler[T any, R any](s *service.CrudService[T, R], name string, logger *slog.Logger) *CrudHandler[T, R] {
	if logger == nil {
		logger = slog.Default()
	}
	return &CrudHandler[T, R]{
		service: s,
		name:    name,
		logger:  logger,
	}
}

// Routes mounts the handler's endpoints on r.
func (h *CrudHandler[T, R]) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *CrudHandler[T, R]) List(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", h.name+".List"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	records, err := h.service.List(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing records in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if records == nil {
		records = []*T{}
	}

	logger.Info("Records listed successfully", slog.Int("count", len(records)))
	webutil.RespondWithJSON(w, http.StatusOK, records, logger)
}

func (h *CrudHandler[T, R]) Get(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", h.name+".Get"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	id, appErr := urlParamID(r)
	if appErr != nil {
		logger.Warn("Invalid id format in URL", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	record, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Record not found", slog.String("id", id.String()))
		} else {
			logger.Error("Error getting record from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, record, logger)
}

func (h *CrudHandler[T, R]) Create(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", h.name+".Create"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	req, ok := h.decodeAndValidate(w, r, logger)
	if !ok {
		return
	}

	record, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Record created successfully")
	webutil.RespondWithJSON(w, http.StatusCreated, record, logger)
}

func (h *CrudHandler[T, R]) Update(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", h.name+".Update"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	id, appErr := urlParamID(r)
	if appErr != nil {
		logger.Warn("Invalid id format in URL", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	req, ok := h.decodeAndValidate(w, r, logger)
	if !ok {
		return
	}

	record, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Record updated successfully", slog.String("id", id.String()))
	webutil.RespondWithJSON(w, http.StatusOK, record, logger)
}

// Delete implements the two-phase flow: without confirm=true the record is
// only echoed back for confirmation, nothing is removed.
func (h *CrudHandler[T, R]) Delete(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", h.name+".Delete"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	id, appErr := urlParamID(r)
	if appErr != nil {
		logger.Warn("Invalid id format in URL", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		record, err := h.service.Get(r.Context(), userID, id)
		if err != nil {
			webutil.HandleError(w, logger, err)
			return
		}
		confirmation := model.DeleteConfirmation{
			ConfirmationRequired: true,
			Message:              fmt.Sprintf("Repeat the request with confirm=true to permanently delete this %s.", h.name),
			Record:               record,
		}
		logger.Info("Delete confirmation requested", slog.String("id", id.String()))
		webutil.RespondWithJSON(w, http.StatusOK, confirmation, logger)
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Record deleted successfully", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *CrudHandler[T, R]) decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*R, bool) {
	var req R
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is not valid JSON.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return nil, false
	}

	if err := webutil.Validator.Struct(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))
			webutil.HandleValidationError(w, logger, validationErrors, req)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return nil, false
	}

	return &req, true
}

func urlParamID(r *http.Request) (uuid.UUID, *model.AppError) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_URL_PARAM", "The id in the URL is not a valid UUID.", "id", model.ErrInvalidInput)
	}
	return id, nil
}
