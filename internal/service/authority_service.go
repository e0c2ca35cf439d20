package service

import (
	"context"

	"guild-dashboard/internal/domain"
	"guild-dashboard/internal/dto"
)

// AuthorityService decides whether a caller holds administrative rights over
// a guild. A non-admin outcome is a normal decision (IsAdmin=false), not an
// error; the error return is reserved for oracle unavailability, which must
// never be conflated with denial.
type AuthorityService interface {
	Resolve(ctx context.Context, guildID domain.GuildID, id domain.Identity) (domain.AuthorityDecision, error)
	ManageableGuilds(ctx context.Context, id domain.Identity) ([]dto.GuildSummary, error)
}
