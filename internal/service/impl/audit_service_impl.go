package impl

import (
	"context"
	"encoding/json"
	"fmt"

	"guild-dashboard/internal/domain"
	"guild-dashboard/internal/dto"
	"guild-dashboard/internal/observability/metrics"
	"guild-dashboard/internal/service"
	"guild-dashboard/internal/store"
)

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 200
)

type AuditServiceImpl struct {
	Store     dataStore
	Authority service.AuthorityService
}

func NewAuditService(st *store.Store, authority service.AuthorityService) *AuditServiceImpl {
	return &AuditServiceImpl{
		Store:     gormStoreAdapter{store: st},
		Authority: authority,
	}
}

func (a *AuditServiceImpl) Page(ctx context.Context, id domain.Identity, guildID domain.GuildID, limit, offset int) (*dto.AuditPage, error) {
	if err := requireAdmin(ctx, a.Authority, guildID, id); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultAuditPageSize
	}
	if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}
	if offset < 0 {
		offset = 0
	}

	rows, total, err := a.Store.Audit().ListForGuild(ctx, guildID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	logs := make([]dto.AuditEntry, len(rows))
	for i, r := range rows {
		logs[i] = dto.AuditEntry{
			ID:        r.ID,
			GuildID:   r.GuildID,
			UserID:    r.UserID,
			Action:    string(r.Action),
			Changes:   json.RawMessage(r.Changes),
			IPAddress: r.IPAddress,
			UserAgent: r.UserAgent,
			CreatedAt: r.CreatedAt,
		}
	}

	return &dto.AuditPage{
		Logs:   logs,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// RecordAuthEvent appends a LOGIN/LOGOUT entry on behalf of the external
// OAuth flow. No admin gate: the caller is recording their own sign-in.
func (a *AuditServiceImpl) RecordAuthEvent(ctx context.Context, id domain.Identity, guildID domain.GuildID, action domain.ActionKind) error {
	if action != domain.ActionLogin && action != domain.ActionLogout {
		return ErrBadAuditAction
	}
	if id.UserID == "" {
		return ErrMissingActor
	}

	entry := &domain.AuditLog{
		GuildID:   guildID,
		UserID:    id.UserID,
		Action:    action,
		IPAddress: id.SourceIP,
		UserAgent: id.UserAgent,
	}
	if err := a.Store.Audit().Append(ctx, entry); err != nil {
		metrics.AuditAppendsTotal.WithLabelValues(string(action), "failure").Inc()
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	metrics.AuditAppendsTotal.WithLabelValues(string(action), "success").Inc()
	return nil
}
