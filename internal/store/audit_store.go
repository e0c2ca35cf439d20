package store

import (
	"context"
	"time"

	"guild-dashboard/internal/domain"

	"gorm.io/gorm"
)

type AuditStore struct{ db *gorm.DB }

func (s *Store) Audit() *AuditStore { return &AuditStore{s.DB} }

// Append is the only write this store offers. Rows are never updated or
// deleted individually.
func (as *AuditStore) Append(ctx context.Context, entry *domain.AuditLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	return as.db.WithContext(ctx).Create(entry).Error
}

// ListForGuild returns one page of a guild's history, newest first, plus the
// total row count for that guild.
func (as *AuditStore) ListForGuild(ctx context.Context, guildID domain.GuildID, limit, offset int) ([]domain.AuditLog, int64, error) {
	var total int64
	if err := as.db.WithContext(ctx).
		Model(&domain.AuditLog{}).
		Where("guild_id = ?", guildID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []domain.AuditLog
	if err := as.db.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (as *AuditStore) CountSince(ctx context.Context, guildID domain.GuildID, since time.Time) (int64, error) {
	var total int64
	err := as.db.WithContext(ctx).
		Model(&domain.AuditLog{}).
		Where("guild_id = ? AND created_at >= ?", guildID, since).
		Count(&total).Error
	return total, err
}
