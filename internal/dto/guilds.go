package dto

// GuildSummary is one guild the caller can manage through the dashboard.
type GuildSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Icon  *string `json:"icon"`
	Owner bool    `json:"owner"`
}
