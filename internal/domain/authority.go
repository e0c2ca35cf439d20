package domain

// AdminBasis records which step of the resolution order granted (or refused)
// administrative rights. The HTTP layer collapses every non-admin outcome into
// a uniform 403, but the basis stays visible in logs and metrics.
type AdminBasis string

const (
	BasisOwner           AdminBasis = "owner"
	BasisOAuthPermission AdminBasis = "oauth-permission"
	BasisLiveMembership  AdminBasis = "live-membership"
	BasisDenied          AdminBasis = "denied"
)

// AuthorityDecision is transient; it is never persisted.
type AuthorityDecision struct {
	GuildID GuildID
	UserID  UserID
	IsAdmin bool
	Basis   AdminBasis
}
