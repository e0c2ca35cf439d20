package dto

import "time"

// EffectiveSettings is the defaults-overlaid, fully-populated view of one
// guild's configuration: every catalog key is present.
type EffectiveSettings map[string]any

type UpdateSettingsRequest struct {
	Settings map[string]any `json:"settings"`
}

type SetSettingRequest struct {
	Value any `json:"value"`
}

type GuildStats struct {
	CustomizedSettings int64      `json:"customizedSettings"`
	RecentActivity     int64      `json:"recentActivity"`
	LastUpdated        *time.Time `json:"lastUpdated"`
}
