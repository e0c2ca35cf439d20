package discord

import (
	"strconv"
	"testing"
)

func TestHasAdminPermissions(t *testing.T) {
	tests := []struct {
		name        string
		permissions string
		want        bool
	}{
		{"administrator bit", "8", true},
		{"manage guild bit", "32", true},
		{"both bits", "40", true},
		{"admin among other bits", strconv.FormatUint(0x8|0x400|0x800, 10), true},
		{"manage guild among other bits", strconv.FormatUint(0x20|0x40, 10), true},
		{"unrelated bits only", strconv.FormatUint(0x400|0x800, 10), false},
		{"zero", "0", false},
		{"empty", "", false},
		{"garbage", "not-a-number", false},
		{"negative", "-8", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasAdminPermissions(tc.permissions); got != tc.want {
				t.Fatalf("HasAdminPermissions(%q) = %v, want %v", tc.permissions, got, tc.want)
			}
		})
	}
}
