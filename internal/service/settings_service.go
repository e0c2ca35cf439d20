package service

import (
	"context"

	"guild-dashboard/internal/domain"
	"guild-dashboard/internal/dto"
)

// SettingsService is the orchestrator for every configuration operation:
// authorize, validate, persist, audit, return the fresh effective view.
//
// Mutations may succeed in a degraded way: when the write committed but the
// audit append failed, the result is returned alongside a *domain.AuditWriteError.
// Callers must not infer from that error that the setting was left unchanged.
type SettingsService interface {
	Effective(ctx context.Context, id domain.Identity, guildID domain.GuildID) (dto.EffectiveSettings, error)
	UpdateMany(ctx context.Context, id domain.Identity, guildID domain.GuildID, changes map[string]any) (dto.EffectiveSettings, error)
	UpdateOne(ctx context.Context, id domain.Identity, guildID domain.GuildID, key string, value any) error
	Reset(ctx context.Context, id domain.Identity, guildID domain.GuildID) error
	Stats(ctx context.Context, id domain.Identity, guildID domain.GuildID) (*dto.GuildStats, error)
}
