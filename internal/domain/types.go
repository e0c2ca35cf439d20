package domain

// Discord snowflakes travel as decimal strings end to end; there is no reason
// to parse them into integers anywhere in this service.
type GuildID = string
type UserID = string

// Identity is the authenticated caller as recovered from the session token:
// who they are plus the OAuth access token we may use to query Discord on
// their behalf. Never persisted.
type Identity struct {
	UserID      UserID
	Username    string
	AccessToken string
	SourceIP    string
	UserAgent   string
}
