package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"guild-dashboard/internal/domain"
)

// auditWarningHeader flags a degraded success: the mutation committed but its
// audit entry did not. The status stays 200 so callers know the write landed.
const auditWarningHeader = "X-Audit-Warning"

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	var invalid *domain.InvalidValueError
	var partial *domain.PartialWriteError

	switch {
	case errors.Is(err, domain.ErrForbidden):
		// Uniform regardless of whether the guild exists or why the check
		// failed, so existence never leaks to unauthorized callers.
		writeJSON(w, http.StatusForbidden, map[string]any{
			"error":   "Forbidden",
			"message": "You must be an administrator in this server to access this resource",
		})
	case errors.Is(err, domain.ErrUnknownSetting), errors.Is(err, domain.ErrInvalidArgument), errors.As(err, &invalid):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
	case errors.Is(err, domain.ErrResolverUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "Failed to verify permissions"})
	case errors.Is(err, domain.ErrStorageUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "Service temporarily unavailable"})
	case errors.As(err, &partial):
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":         "Failed to update settings",
			"committedKeys": partial.Committed,
			"failedKey":     partial.FailedKey,
		})
	default:
		slog.Error("unexpected handler error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Internal server error"})
	}
}
