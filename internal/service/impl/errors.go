package impl

import (
	"fmt"

	"guild-dashboard/internal/domain"
)

// Caller mistakes, all wrapping domain.ErrInvalidArgument so the transport
// layer maps them to a 400 rather than a 500.
var (
	ErrMissingGuildID = fmt.Errorf("%w: empty guild id", domain.ErrInvalidArgument)
	ErrMissingActor   = fmt.Errorf("%w: empty actor user id", domain.ErrInvalidArgument)
	ErrBadAuditAction = fmt.Errorf("%w: action must be LOGIN or LOGOUT", domain.ErrInvalidArgument)
	ErrNilSettingsMap = fmt.Errorf("%w: settings map is nil", domain.ErrInvalidArgument)
)
