package impl

import (
	"context"
	"errors"
	"time"

	"guild-dashboard/internal/domain"
	"guild-dashboard/internal/store"
)

// Narrow store interfaces so the impls can be tested against in-memory fakes.

type dataStore interface {
	Settings() settingsStore
	Audit() auditStore
	WithTx(ctx context.Context, fn func(tx dataStore) error) error
}

type settingsStore interface {
	ListForGuild(ctx context.Context, guildID domain.GuildID) ([]domain.GuildSetting, error)
	Upsert(ctx context.Context, rec *domain.GuildSetting) error
	DeleteForGuild(ctx context.Context, guildID domain.GuildID) (int64, error)
	CountForGuild(ctx context.Context, guildID domain.GuildID) (int64, error)
	LastUpdatedForGuild(ctx context.Context, guildID domain.GuildID) (*time.Time, error)
}

type auditStore interface {
	Append(ctx context.Context, entry *domain.AuditLog) error
	ListForGuild(ctx context.Context, guildID domain.GuildID, limit, offset int) ([]domain.AuditLog, int64, error)
	CountSince(ctx context.Context, guildID domain.GuildID, since time.Time) (int64, error)
}

type gormStoreAdapter struct {
	store *store.Store
}

func (g gormStoreAdapter) Settings() settingsStore { return g.store.Settings() }

func (g gormStoreAdapter) Audit() auditStore { return g.store.Audit() }

func (g gormStoreAdapter) WithTx(ctx context.Context, fn func(tx dataStore) error) error {
	if g.store == nil {
		return errors.New("nil store")
	}
	return g.store.WithTx(ctx, func(tx *store.Store) error {
		return fn(gormStoreAdapter{store: tx})
	})
}
