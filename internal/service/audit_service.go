package service

import (
	"context"

	"guild-dashboard/internal/domain"
	"guild-dashboard/internal/dto"
)

type AuditService interface {
	// Page returns one admin-gated page of a guild's history, newest first.
	Page(ctx context.Context, id domain.Identity, guildID domain.GuildID, limit, offset int) (*dto.AuditPage, error)

	// RecordAuthEvent appends a LOGIN or LOGOUT entry. The OAuth flow itself
	// lives outside this service; this is the hook it calls.
	RecordAuthEvent(ctx context.Context, id domain.Identity, guildID domain.GuildID, action domain.ActionKind) error
}
