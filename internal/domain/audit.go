package domain

import "time"

type ActionKind string

const (
	ActionSettingsBulkUpdate ActionKind = "SETTINGS_BULK_UPDATE"
	ActionSettingUpdate      ActionKind = "SETTING_UPDATE"
	ActionSettingsReset      ActionKind = "SETTINGS_RESET"
	ActionLogin              ActionKind = "LOGIN"
	ActionLogout             ActionKind = "LOGOUT"
)

// AuditLog rows are append-only: never updated, never deleted individually.
// ID is the autoincrement primary key, so it is monotonic per insert order.
type AuditLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" db:"id"`
	GuildID   GuildID    `gorm:"type:text;not null;index:ix_audit_logs_guild_created,priority:1" db:"guild_id"`
	UserID    UserID     `gorm:"type:text;not null" db:"user_id"`
	Action    ActionKind `gorm:"type:text;not null" db:"action"`
	Changes   []byte     `gorm:"type:jsonb" db:"changes"` // JSON, nil for resets
	IPAddress string     `gorm:"type:text" db:"ip_address"`
	UserAgent string     `gorm:"type:text" db:"user_agent"`
	CreatedAt time.Time  `gorm:"not null;index:ix_audit_logs_guild_created,priority:2" db:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }
