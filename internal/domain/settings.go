package domain

import "time"

// GuildSetting is one stored override for a single catalog key. Absence of a
// row means "use the registry default". Unique on (guild_id, setting_key);
// the upsert in the store relies on that index.
type GuildSetting struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" db:"id"`
	GuildID      GuildID   `gorm:"type:text;not null;uniqueIndex:ux_guild_settings_guild_key,priority:1;index:ix_guild_settings_guild" db:"guild_id"`
	SettingKey   string    `gorm:"type:text;not null;uniqueIndex:ux_guild_settings_guild_key,priority:2" db:"setting_key"`
	SettingValue []byte    `gorm:"type:jsonb;not null" db:"setting_value"` // JSON-encoded
	UpdatedBy    UserID    `gorm:"type:text" db:"updated_by"`
	CreatedAt    time.Time `gorm:"not null" db:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" db:"updated_at"`
}

func (GuildSetting) TableName() string { return "guild_settings" }
