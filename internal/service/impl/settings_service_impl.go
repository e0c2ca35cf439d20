package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"guild-dashboard/internal/domain"
	"guild-dashboard/internal/dto"
	"guild-dashboard/internal/observability/metrics"
	"guild-dashboard/internal/schema"
	"guild-dashboard/internal/service"
	"guild-dashboard/internal/store"
)

type SettingsServiceImpl struct {
	Store     dataStore
	Authority service.AuthorityService
}

func NewSettingsService(st *store.Store, authority service.AuthorityService) *SettingsServiceImpl {
	return &SettingsServiceImpl{
		Store:     gormStoreAdapter{store: st},
		Authority: authority,
	}
}

func (s *SettingsServiceImpl) Effective(ctx context.Context, id domain.Identity, guildID domain.GuildID) (dto.EffectiveSettings, error) {
	if err := requireAdmin(ctx, s.Authority, guildID, id); err != nil {
		return nil, err
	}
	return s.effective(ctx, guildID)
}

// UpdateMany validates the whole map before any write, then upserts every key
// inside one transaction. One SETTINGS_BULK_UPDATE audit entry carries the
// pre-write effective snapshot as "old" and the submitted map as "new".
func (s *SettingsServiceImpl) UpdateMany(ctx context.Context, id domain.Identity, guildID domain.GuildID, changes map[string]any) (dto.EffectiveSettings, error) {
	if err := requireAdmin(ctx, s.Authority, guildID, id); err != nil {
		return nil, err
	}
	if changes == nil {
		return nil, ErrNilSettingsMap
	}

	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// A single invalid pair aborts the whole request before anything is
	// persisted.
	for _, k := range keys {
		if err := schema.Validate(k, changes[k]); err != nil {
			return nil, err
		}
	}

	old, err := s.effective(ctx, guildID)
	if err != nil {
		return nil, err
	}

	var failedKey string
	err = s.Store.WithTx(ctx, func(tx dataStore) error {
		for _, k := range keys {
			raw, merr := json.Marshal(changes[k])
			if merr != nil {
				failedKey = k
				return merr
			}
			rec := &domain.GuildSetting{
				GuildID:      guildID,
				SettingKey:   k,
				SettingValue: raw,
				UpdatedBy:    id.UserID,
			}
			if uerr := tx.Settings().Upsert(ctx, rec); uerr != nil {
				failedKey = k
				return uerr
			}
		}
		return nil
	})
	if err != nil {
		metrics.SettingsWritesTotal.WithLabelValues("bulk", "failure").Inc()
		// The transaction rolled back, so nothing in this batch committed.
		return nil, &domain.PartialWriteError{FailedKey: failedKey, Err: err}
	}
	metrics.SettingsWritesTotal.WithLabelValues("bulk", "success").Inc()

	auditErr := s.appendAudit(ctx, id, guildID, domain.ActionSettingsBulkUpdate, map[string]any{
		"old": old,
		"new": changes,
	})

	fresh, err := s.effective(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if auditErr != nil {
		return fresh, &domain.AuditWriteError{Action: domain.ActionSettingsBulkUpdate, Err: auditErr}
	}
	return fresh, nil
}

func (s *SettingsServiceImpl) UpdateOne(ctx context.Context, id domain.Identity, guildID domain.GuildID, key string, value any) error {
	if err := requireAdmin(ctx, s.Authority, guildID, id); err != nil {
		return err
	}
	if err := schema.Validate(key, value); err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return &domain.InvalidValueError{Key: key, Detail: err.Error()}
	}
	rec := &domain.GuildSetting{
		GuildID:      guildID,
		SettingKey:   key,
		SettingValue: raw,
		UpdatedBy:    id.UserID,
	}
	if err := s.Store.Settings().Upsert(ctx, rec); err != nil {
		metrics.SettingsWritesTotal.WithLabelValues("single", "failure").Inc()
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	metrics.SettingsWritesTotal.WithLabelValues("single", "success").Inc()

	if auditErr := s.appendAudit(ctx, id, guildID, domain.ActionSettingUpdate, map[string]any{
		"key":   key,
		"value": value,
	}); auditErr != nil {
		return &domain.AuditWriteError{Action: domain.ActionSettingUpdate, Err: auditErr}
	}
	return nil
}

// Reset removes every stored override; effective settings revert to pure
// catalog defaults. Irreversible.
func (s *SettingsServiceImpl) Reset(ctx context.Context, id domain.Identity, guildID domain.GuildID) error {
	if err := requireAdmin(ctx, s.Authority, guildID, id); err != nil {
		return err
	}

	rows, err := s.Store.Settings().DeleteForGuild(ctx, guildID)
	if err != nil {
		metrics.SettingsWritesTotal.WithLabelValues("reset", "failure").Inc()
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	metrics.SettingsWritesTotal.WithLabelValues("reset", "success").Inc()
	slog.Info("guild settings reset", "guild_id", guildID, "user_id", id.UserID, "rows", rows)

	if auditErr := s.appendAudit(ctx, id, guildID, domain.ActionSettingsReset, nil); auditErr != nil {
		return &domain.AuditWriteError{Action: domain.ActionSettingsReset, Err: auditErr}
	}
	return nil
}

func (s *SettingsServiceImpl) Stats(ctx context.Context, id domain.Identity, guildID domain.GuildID) (*dto.GuildStats, error) {
	if err := requireAdmin(ctx, s.Authority, guildID, id); err != nil {
		return nil, err
	}

	customized, err := s.Store.Settings().CountForGuild(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	recent, err := s.Store.Audit().CountSince(ctx, guildID, time.Now().UTC().Add(-7*24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	last, err := s.Store.Settings().LastUpdatedForGuild(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	return &dto.GuildStats{
		CustomizedSettings: customized,
		RecentActivity:     recent,
		LastUpdated:        last,
	}, nil
}

// effective reads the guild's stored rows and overlays them on the catalog
// defaults. Computed fresh on every call; never cached.
func (s *SettingsServiceImpl) effective(ctx context.Context, guildID domain.GuildID) (dto.EffectiveSettings, error) {
	rows, err := s.Store.Settings().ListForGuild(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	out := schema.Defaults()
	for _, r := range rows {
		if _, derr := schema.Definition(r.SettingKey); derr != nil {
			// Rows for keys dropped from the catalog never surface.
			continue
		}
		out[r.SettingKey] = decodeStored(r.SettingValue)
	}
	return dto.EffectiveSettings(out), nil
}

// decodeStored parses a stored JSON value, falling back to the raw text for
// legacy rows that never round-trip cleanly.
func decodeStored(raw []byte) any {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}

func (s *SettingsServiceImpl) appendAudit(ctx context.Context, id domain.Identity, guildID domain.GuildID, action domain.ActionKind, changes any) error {
	var raw []byte
	if changes != nil {
		var err error
		if raw, err = json.Marshal(changes); err != nil {
			return err
		}
	}
	entry := &domain.AuditLog{
		GuildID:   guildID,
		UserID:    id.UserID,
		Action:    action,
		Changes:   raw,
		IPAddress: id.SourceIP,
		UserAgent: id.UserAgent,
	}
	if err := s.Store.Audit().Append(ctx, entry); err != nil {
		metrics.AuditAppendsTotal.WithLabelValues(string(action), "failure").Inc()
		slog.Error("audit append failed after committed write",
			"guild_id", guildID,
			"user_id", id.UserID,
			"action", action,
			"error", err,
		)
		return err
	}
	metrics.AuditAppendsTotal.WithLabelValues(string(action), "success").Inc()
	return nil
}

// requireAdmin gates a request on the authority decision. Denied and
// not-admin both read as ErrForbidden; resolver faults pass through distinct.
func requireAdmin(ctx context.Context, authority service.AuthorityService, guildID domain.GuildID, id domain.Identity) error {
	if id.UserID == "" {
		return ErrMissingActor
	}
	dec, err := authority.Resolve(ctx, guildID, id)
	if err != nil {
		return err
	}
	if !dec.IsAdmin {
		return domain.ErrForbidden
	}
	return nil
}
