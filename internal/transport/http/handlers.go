package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"guild-dashboard/internal/domain"
	"guild-dashboard/internal/dto"
	"guild-dashboard/internal/service"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	Settings  service.SettingsService
	Authority service.AuthorityService
	Audit     service.AuditService
}

func NewHandler(settings service.SettingsService, authority service.AuthorityService, audit service.AuditService) *Handler {
	return &Handler{Settings: settings, Authority: authority, Audit: audit}
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Unauthorized"})
		return
	}
	settings, err := h.Settings.Effective(r.Context(), id, chi.URLParam(r, "guildID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Unauthorized"})
		return
	}
	var req dto.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Settings == nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid settings format"})
		return
	}

	fresh, err := h.Settings.UpdateMany(r.Context(), id, chi.URLParam(r, "guildID"), req.Settings)
	var degraded *domain.AuditWriteError
	if errors.As(err, &degraded) {
		w.Header().Set(auditWarningHeader, "audit log write failed")
		writeJSON(w, http.StatusOK, fresh)
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fresh)
}

func (h *Handler) PutSetting(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Unauthorized"})
		return
	}
	var req dto.SetSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		return
	}

	err := h.Settings.UpdateOne(r.Context(), id, chi.URLParam(r, "guildID"), chi.URLParam(r, "settingKey"), req.Value)
	var degraded *domain.AuditWriteError
	if errors.As(err, &degraded) {
		w.Header().Set(auditWarningHeader, "audit log write failed")
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) ResetSettings(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Unauthorized"})
		return
	}
	err := h.Settings.Reset(r.Context(), id, chi.URLParam(r, "guildID"))
	var degraded *domain.AuditWriteError
	if errors.As(err, &degraded) {
		w.Header().Set(auditWarningHeader, "audit log write failed")
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Unauthorized"})
		return
	}
	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	page, err := h.Audit.Page(r.Context(), id, chi.URLParam(r, "guildID"), limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Unauthorized"})
		return
	}
	stats, err := h.Settings.Stats(r.Context(), id, chi.URLParam(r, "guildID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) Guilds(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Unauthorized"})
		return
	}
	guilds, err := h.Authority.ManageableGuilds(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, guilds)
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
