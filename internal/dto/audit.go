package dto

import (
	"encoding/json"
	"time"
)

type AuditEntry struct {
	ID        int64           `json:"id"`
	GuildID   string          `json:"guildId"`
	UserID    string          `json:"userId"`
	Action    string          `json:"action"`
	Changes   json.RawMessage `json:"changes"`
	IPAddress string          `json:"ipAddress,omitempty"`
	UserAgent string          `json:"userAgent,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type AuditPage struct {
	Logs   []AuditEntry `json:"logs"`
	Total  int64        `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}
