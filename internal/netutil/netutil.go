// Package netutil canonicalizes the transport-level values recorded on audit
// rows: the caller's source address and user agent.
package netutil

import (
	"net"
	"net/netip"
	"strings"
	"unicode/utf8"
)

// Audit rows store the user agent as plain text; bound it so a single hostile
// header cannot bloat the table.
const maxUserAgentLen = 256

// CanonicalIP strips any port and IPv6 zone from raw and returns the textual
// address. ok is false when raw holds no parseable IP, in which case raw comes
// back unchanged for the caller to record as-is.
func CanonicalIP(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if host, _, err := net.SplitHostPort(raw); err == nil {
		raw = host
	}
	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return raw, false
	}
	return addr.WithZone("").String(), true
}

// SanitizeUserAgent caps the recorded user agent at maxUserAgentLen runes,
// cutting on a rune boundary.
func SanitizeUserAgent(ua string) string {
	if utf8.RuneCountInString(ua) <= maxUserAgentLen {
		return ua
	}
	return string([]rune(ua)[:maxUserAgentLen])
}
