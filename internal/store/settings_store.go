package store

import (
	"context"
	"time"

	"guild-dashboard/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsStore struct{ db *gorm.DB }

func (s *Store) Settings() *SettingsStore { return &SettingsStore{s.DB} }

func (ss *SettingsStore) ListForGuild(ctx context.Context, guildID domain.GuildID) ([]domain.GuildSetting, error) {
	var rows []domain.GuildSetting
	if err := ss.db.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Upsert inserts or overwrites the (guild_id, setting_key) row. Concurrent
// writers to the same key resolve last-writer-wins at the storage layer; the
// unique index guarantees the row never duplicates.
func (ss *SettingsStore) Upsert(ctx context.Context, rec *domain.GuildSetting) error {
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	// Requires the unique index on (guild_id, setting_key) (see domain tag).
	return ss.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guild_id"}, {Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_by", "updated_at"}),
	}).Create(rec).Error
}

func (ss *SettingsStore) DeleteForGuild(ctx context.Context, guildID domain.GuildID) (int64, error) {
	tx := ss.db.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Delete(&domain.GuildSetting{})
	return tx.RowsAffected, tx.Error
}

func (ss *SettingsStore) CountForGuild(ctx context.Context, guildID domain.GuildID) (int64, error) {
	var total int64
	err := ss.db.WithContext(ctx).
		Model(&domain.GuildSetting{}).
		Where("guild_id = ?", guildID).
		Count(&total).Error
	return total, err
}

// LastUpdatedForGuild returns nil when the guild has no stored overrides.
func (ss *SettingsStore) LastUpdatedForGuild(ctx context.Context, guildID domain.GuildID) (*time.Time, error) {
	var rec domain.GuildSetting
	err := ss.db.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("updated_at DESC").
		First(&rec).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec.UpdatedAt, nil
}
