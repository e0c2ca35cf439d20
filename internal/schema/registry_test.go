package schema

import (
	"errors"
	"testing"

	"guild-dashboard/internal/domain"
)

func TestCatalogHas56Keys(t *testing.T) {
	if got := len(Keys()); got != 56 {
		t.Fatalf("expected 56 catalog keys, got %d", got)
	}
	if got := len(Defaults()); got != 56 {
		t.Fatalf("expected 56 defaults, got %d", got)
	}
}

func TestDefinitionUnknownKey(t *testing.T) {
	_, err := Definition("noSuchSetting")
	if !errors.Is(err, domain.ErrUnknownSetting) {
		t.Fatalf("expected ErrUnknownSetting, got %v", err)
	}
}

func TestDefaultsAreFreshCopies(t *testing.T) {
	a := Defaults()
	a["darkMode"] = false
	a["allowRoleIDs"] = append(a["allowRoleIDs"].([]string), "123")

	b := Defaults()
	if b["darkMode"] != true {
		t.Fatalf("defaults map leaked a mutation")
	}
	if roles := b["allowRoleIDs"].([]string); len(roles) != 0 {
		t.Fatalf("defaults slice leaked a mutation: %v", roles)
	}
}

func TestValidateKnownGoodValues(t *testing.T) {
	tests := []struct {
		key   string
		value any
	}{
		{"defaultBrowser", "firefox"},
		{"darkMode", false},
		{"autoModerationLevel", "strict"},
		{"spamThreshold", float64(50)}, // JSON numbers decode as float64
		{"spamThreshold", 1},
		{"maxConcurrentSessions", float64(10)},
		{"customHomepage", ""},
		{"alertWebhookURL", ""},
		{"alertWebhookURL", "https://example.com/hook"},
		{"allowRoleIDs", []any{"1234", "5678"}},
		{"badWordList", []string{}},
		{"timeoutDuration", float64(0)},
	}
	for _, tc := range tests {
		if err := Validate(tc.key, tc.value); err != nil {
			t.Errorf("Validate(%s, %v): unexpected error %v", tc.key, tc.value, err)
		}
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"enum out of set", "autoModerationLevel", "extreme"},
		{"enum wrong type", "dashboardTheme", true},
		{"bool wrong type", "darkMode", "yes"},
		{"int below min", "spamThreshold", float64(0)},
		{"int above max", "spamThreshold", float64(101)},
		{"int fractional", "screenshotQuality", 79.5},
		{"int wrong type", "metricsInterval", "3600000"},
		{"uri malformed", "alertWebhookURL", "not a uri"},
		{"uri missing host", "pluginRepositoryURL", "https://"},
		{"list wrong type", "allowRoleIDs", "1234"},
		{"list non-string element", "blockRoleIDs", []any{"ok", float64(7)}},
		{"null value", "darkMode", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.key, tc.value)
			if err == nil {
				t.Fatalf("expected error for %s=%v", tc.key, tc.value)
			}
			var invalid *domain.InvalidValueError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidValueError, got %T: %v", err, err)
			}
			if invalid.Key != tc.key {
				t.Fatalf("error names key %q, want %q", invalid.Key, tc.key)
			}
		})
	}
}

func TestValidateUnknownKey(t *testing.T) {
	err := Validate("nope", true)
	if !errors.Is(err, domain.ErrUnknownSetting) {
		t.Fatalf("expected ErrUnknownSetting, got %v", err)
	}
}

func TestDefaultOf(t *testing.T) {
	v, err := DefaultOf("autoModerationLevel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "medium" {
		t.Fatalf("expected medium, got %v", v)
	}
}
