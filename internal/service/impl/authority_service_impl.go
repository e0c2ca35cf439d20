package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"guild-dashboard/internal/discord"
	"guild-dashboard/internal/domain"
	"guild-dashboard/internal/dto"
	"guild-dashboard/internal/observability/metrics"
)

// The two oracle capabilities are kept separate so tests can fake the cheap
// caller-scoped listing and the privileged membership lookup independently.

type guildListOracle interface {
	UserGuilds(ctx context.Context, accessToken string) ([]discord.Guild, error)
}

type membershipOracle interface {
	Guild(ctx context.Context, guildID string) (*discord.GuildDetail, error)
	GuildMember(ctx context.Context, guildID, userID string) (*discord.Member, error)
}

type AuthorityServiceImpl struct {
	CallerGuilds guildListOracle
	Membership   membershipOracle
	Timeout      time.Duration
}

func NewAuthorityService(client *discord.Client, timeout time.Duration) *AuthorityServiceImpl {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &AuthorityServiceImpl{
		CallerGuilds: client,
		Membership:   client,
		Timeout:      timeout,
	}
}

// Resolve runs the fixed decision order, short-circuiting on the first
// positive:
//
//  1. guild absent from the caller's own list      -> denied
//  2. owner flag on that list entry                -> owner
//  3. ADMINISTRATOR or MANAGE_GUILD in the entry's
//     permission bitmask                           -> oauth-permission
//  4. live bot-token lookup: owner_id match or
//     member bitmask                               -> live-membership
//  5. otherwise                                    -> denied
//
// Oracle transport failures return ErrResolverUnavailable and never read as
// a denial. The whole resolution runs under one bounded timeout.
func (a *AuthorityServiceImpl) Resolve(ctx context.Context, guildID domain.GuildID, id domain.Identity) (domain.AuthorityDecision, error) {
	dec := domain.AuthorityDecision{GuildID: guildID, UserID: id.UserID, Basis: domain.BasisDenied}
	if guildID == "" {
		return dec, ErrMissingGuildID
	}

	ctx, cancel := context.WithTimeout(ctx, a.Timeout)
	defer cancel()

	guilds, err := a.CallerGuilds.UserGuilds(ctx, id.AccessToken)
	if err != nil {
		return dec, fmt.Errorf("%w: %v", domain.ErrResolverUnavailable, err)
	}

	var entry *discord.Guild
	for i := range guilds {
		if guilds[i].ID == guildID {
			entry = &guilds[i]
			break
		}
	}
	if entry == nil {
		// The caller has no visibility into the guild at all.
		return a.observe(dec), nil
	}

	if entry.Owner {
		dec.IsAdmin = true
		dec.Basis = domain.BasisOwner
		return a.observe(dec), nil
	}
	if discord.HasAdminPermissions(entry.Permissions) {
		dec.IsAdmin = true
		dec.Basis = domain.BasisOAuthPermission
		return a.observe(dec), nil
	}

	// OAuth snapshots go stale after role changes; re-check over the bot's
	// own channel before denying.
	member, err := a.Membership.GuildMember(ctx, guildID, id.UserID)
	if errors.Is(err, discord.ErrMemberNotFound) {
		return a.observe(dec), nil
	}
	if err != nil {
		return dec, fmt.Errorf("%w: %v", domain.ErrResolverUnavailable, err)
	}

	detail, err := a.Membership.Guild(ctx, guildID)
	if errors.Is(err, discord.ErrGuildNotFound) {
		// The bot can no longer see the guild; the live path vouches for no one.
		return a.observe(dec), nil
	}
	if err != nil {
		return dec, fmt.Errorf("%w: %v", domain.ErrResolverUnavailable, err)
	}

	if detail != nil && detail.OwnerID == id.UserID {
		dec.IsAdmin = true
		dec.Basis = domain.BasisLiveMembership
	} else if discord.HasAdminPermissions(member.Permissions) {
		dec.IsAdmin = true
		dec.Basis = domain.BasisLiveMembership
	}
	return a.observe(dec), nil
}

// ManageableGuilds lists the caller's guilds filtered to those they own or
// hold admin bits in, for the dashboard's server picker.
func (a *AuthorityServiceImpl) ManageableGuilds(ctx context.Context, id domain.Identity) ([]dto.GuildSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, a.Timeout)
	defer cancel()

	guilds, err := a.CallerGuilds.UserGuilds(ctx, id.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrResolverUnavailable, err)
	}

	out := make([]dto.GuildSummary, 0, len(guilds))
	for _, g := range guilds {
		if !g.Owner && !discord.HasAdminPermissions(g.Permissions) {
			continue
		}
		out = append(out, dto.GuildSummary{
			ID:    g.ID,
			Name:  g.Name,
			Icon:  g.Icon,
			Owner: g.Owner,
		})
	}
	return out, nil
}

func (a *AuthorityServiceImpl) observe(dec domain.AuthorityDecision) domain.AuthorityDecision {
	metrics.AdminChecksTotal.WithLabelValues(string(dec.Basis)).Inc()
	slog.Debug("authority resolved",
		"guild_id", dec.GuildID,
		"user_id", dec.UserID,
		"admin", dec.IsAdmin,
		"basis", dec.Basis,
	)
	return dec
}
