// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"learning_tracker/internal/model"

	"github.com/go-playground/validator/v10"
)

// HandleError interprets err and writes the matching JSON error response.
// This is the single exit point for every failed request.
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	switch {
	case errors.As(err, &appErr):
		errResp = model.APIErrorResponse{Error: appErr.Detail}
	case errors.Is(err, model.ErrNotFound):
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{Code: "NOT_FOUND", Message: "The requested resource was not found."},
		}
	case errors.Is(err, model.ErrInvalidInput):
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{Code: "INVALID_INPUT", Message: "The submitted input is invalid."},
		}
	case errors.Is(err, model.ErrConflict):
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{Code: "CONFLICT", Message: "The request conflicts with an existing resource."},
		}
	case errors.Is(err, model.ErrUnauthorized):
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{Code: "UNAUTHORIZED", Message: "Authentication is required."},
		}
	default:
		logger.Error("Unhandled error", slog.Any("error", err))
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{
				Code:    "INTERNAL_SERVER_ERROR",
				Message: "An internal server error occurred.",
			},
		}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// HandleValidationError writes a 400 carrying every failing field and the
// submitted input. Validation failures are a normal, recoverable outcome of
// create/update: nothing was persisted and the client may resubmit.
func HandleValidationError(w http.ResponseWriter, logger *slog.Logger, errs validator.ValidationErrors, submitted any) {
	fields := make([]model.FieldError, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, model.FieldError{
			Field:   fe.Field(),
			Message: fe.Translate(Trans),
		})
	}

	errResp := model.APIErrorResponse{
		Error: model.ErrorDetail{
			Code:    "VALIDATION_ERROR",
			Message: "The submitted input is invalid.",
			Field:   fields[0].Field,
		},
		Fields:    fields,
		Submitted: submitted,
	}
	RespondWithJSON(w, http.StatusBadRequest, errResp, logger)
}

// MapErrorToStatusCode maps application errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	if errors.As(err, &appErr) && appErr.Unwrap() != nil {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON writes payload as a JSON response.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"Failed to encode response."}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
