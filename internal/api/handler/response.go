package handler

import (
	"emi-payments/internal/api/handler/dto"
	"emi-payments/internal/pkg/apperrors"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

// respondError maps the error taxonomy to a status code. Store failures are
// answered with storeMsg unless exposeDetail is set, in which case the
// underlying driver message is returned.
func respondError(w http.ResponseWriter, err error, storeMsg string, exposeDetail bool) {
	var validationErr *apperrors.ValidationError
	var notFoundErr *apperrors.NotFoundError
	var appErr *apperrors.AppError

	status := http.StatusInternalServerError
	resp := dto.ErrorResponse{Error: storeMsg}

	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		resp = dto.ErrorResponse{Error: validationErr.Message, Field: validationErr.Field}
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidArgument):
		status = http.StatusBadRequest
		resp.Error = err.Error()
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
		resp.Error = notFoundErr.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
		resp.Error = "Resource not found"
	case exposeDetail && errors.As(err, &appErr):
		resp.Error = appErr.Detail()
	case exposeDetail:
		resp.Error = apperrors.RootCause(err).Error()
	}

	respondJSON(w, status, resp)
}
