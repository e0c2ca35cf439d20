package discord

import "strconv"

// Permission bits relevant to dashboard access. Either one grants admin.
const (
	PermAdministrator uint64 = 0x8
	PermManageGuild   uint64 = 0x20
)

// HasAdminPermissions reports whether a permission bitmask (decimal string,
// as Discord serializes it) carries ADMINISTRATOR or MANAGE_GUILD. Empty or
// unparseable input is never admin.
func HasAdminPermissions(permissions string) bool {
	if permissions == "" {
		return false
	}
	bits, err := strconv.ParseUint(permissions, 10, 64)
	if err != nil {
		return false
	}
	return bits&PermAdministrator != 0 || bits&PermManageGuild != 0
}
