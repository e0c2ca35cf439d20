// Package schema is the static settings catalog: every key the dashboard
// knows about, its compiled-in default and its type constraint. The catalog
// is process-lifetime constant; changing it requires a new release.
package schema

import (
	"fmt"

	"guild-dashboard/internal/domain"
)

type SettingDefinition struct {
	Key        string
	Default    any
	Constraint Constraint
}

// catalog preserves the dashboard's grouping order. 56 keys.
var catalog = []SettingDefinition{
	// General
	{Key: "defaultBrowser", Default: "chrome", Constraint: oneOf("chrome", "firefox")},
	{Key: "allowFirefox", Default: true, Constraint: BoolConstraint{}},
	{Key: "darkMode", Default: true, Constraint: BoolConstraint{}},
	{Key: "dashboardTheme", Default: "dark", Constraint: oneOf("dark", "light", "auto")},
	{Key: "locale", Default: "en-US", Constraint: StringConstraint{}},
	{Key: "timeZone", Default: "UTC", Constraint: StringConstraint{}},

	// Access control
	{Key: "allowRoleIDs", Default: []string{}, Constraint: StringListConstraint{}},
	{Key: "blockRoleIDs", Default: []string{}, Constraint: StringListConstraint{}},
	{Key: "trustedUserIDs", Default: []string{}, Constraint: StringListConstraint{}},
	{Key: "maintenanceMode", Default: false, Constraint: BoolConstraint{}},
	{Key: "adminOnlyCommands", Default: false, Constraint: BoolConstraint{}},
	{Key: "modRoleIDs", Default: []string{}, Constraint: StringListConstraint{}},
	{Key: "viewerRoleIDs", Default: []string{}, Constraint: StringListConstraint{}},
	{Key: "restrictedChannelIDs", Default: []string{}, Constraint: StringListConstraint{}},

	// Moderation
	{Key: "autoModerationLevel", Default: "medium", Constraint: oneOf("off", "low", "medium", "high", "strict")},
	{Key: "nsfwFilter", Default: true, Constraint: BoolConstraint{}},
	{Key: "urlBlacklist", Default: []string{}, Constraint: StringListConstraint{}},
	{Key: "allowedDomains", Default: []string{}, Constraint: StringListConstraint{}},
	{Key: "spamThreshold", Default: 5, Constraint: intRange(1, 100)},
	{Key: "badWordList", Default: []string{}, Constraint: StringListConstraint{}},
	{Key: "timeoutDuration", Default: 300000, Constraint: intMin(0)},
	{Key: "strikeDecayDays", Default: 30, Constraint: intRange(1, 365)},
	{Key: "autoKickThreshold", Default: 5, Constraint: intMin(0)},
	{Key: "autoBanThreshold", Default: 10, Constraint: intMin(0)},
	{Key: "logModerationActions", Default: true, Constraint: BoolConstraint{}},

	// Browser automation
	{Key: "performanceMode", Default: false, Constraint: BoolConstraint{}},
	{Key: "maxSessionDuration", Default: 300000, Constraint: intRange(1000, 3600000)},
	{Key: "screenshotQuality", Default: 80, Constraint: intRange(1, 100)},
	{Key: "autoCloseBrowser", Default: true, Constraint: BoolConstraint{}},
	{Key: "mouseSensitivity", Default: 70, Constraint: intRange(1, 100)},
	{Key: "customHomepage", Default: "", Constraint: StringConstraint{}},
	{Key: "persistentCookies", Default: false, Constraint: BoolConstraint{}},
	{Key: "allowFileDownloads", Default: true, Constraint: BoolConstraint{}},
	{Key: "enableClipboardSync", Default: false, Constraint: BoolConstraint{}},
	{Key: "enableKeyboardShortcuts", Default: true, Constraint: BoolConstraint{}},
	{Key: "maxConcurrentSessions", Default: 3, Constraint: intRange(1, 10)},

	// Logging & alerts
	{Key: "logChannelID", Default: "", Constraint: StringConstraint{}},
	{Key: "dmOwnerOnFlags", Default: true, Constraint: BoolConstraint{}},
	{Key: "alertWebhookURL", Default: "", Constraint: StringConstraint{URI: true}},
	{Key: "errorWebhookURL", Default: "", Constraint: StringConstraint{URI: true}},
	{Key: "reportOnBrowserSwitch", Default: false, Constraint: BoolConstraint{}},
	{Key: "metricsInterval", Default: 3600000, Constraint: intMin(60000)},
	{Key: "metricsChannelID", Default: "", Constraint: StringConstraint{}},
	{Key: "notifyOnSessionStart", Default: false, Constraint: BoolConstraint{}},
	{Key: "notifyOnSessionEnd", Default: false, Constraint: BoolConstraint{}},

	// Integrations
	{Key: "enableGoogleSafeBrowsing", Default: false, Constraint: BoolConstraint{}},
	{Key: "enableVirusTotalScan", Default: false, Constraint: BoolConstraint{}},
	{Key: "enableOpenAIContentFilter", Default: false, Constraint: BoolConstraint{}},
	{Key: "enableCustomPlugins", Default: false, Constraint: BoolConstraint{}},
	{Key: "pluginRepositoryURL", Default: "", Constraint: StringConstraint{URI: true}},
	{Key: "customPluginList", Default: []string{}, Constraint: StringListConstraint{}},

	// Quality of life
	{Key: "sessionReminderInterval", Default: 60000, Constraint: intMin(10000)},
	{Key: "autoUpdatePlugins", Default: true, Constraint: BoolConstraint{}},
	{Key: "cacheScreenshots", Default: true, Constraint: BoolConstraint{}},
	{Key: "allowUserPresets", Default: true, Constraint: BoolConstraint{}},
	{Key: "allowBrowserHistoryExport", Default: false, Constraint: BoolConstraint{}},
}

var byKey = func() map[string]SettingDefinition {
	m := make(map[string]SettingDefinition, len(catalog))
	for _, def := range catalog {
		if _, dup := m[def.Key]; dup {
			panic(fmt.Sprintf("schema: duplicate catalog key %q", def.Key))
		}
		m[def.Key] = def
	}
	return m
}()

// Definition returns the catalog entry for key, or domain.ErrUnknownSetting.
func Definition(key string) (SettingDefinition, error) {
	def, ok := byKey[key]
	if !ok {
		return SettingDefinition{}, fmt.Errorf("%w: %q", domain.ErrUnknownSetting, key)
	}
	return def, nil
}

func DefaultOf(key string) (any, error) {
	def, err := Definition(key)
	if err != nil {
		return nil, err
	}
	return cloneValue(def.Default), nil
}

// Keys returns all catalog keys in declaration order.
func Keys() []string {
	out := make([]string, len(catalog))
	for i, def := range catalog {
		out[i] = def.Key
	}
	return out
}

// Defaults returns a fresh map of every key's default value. Callers may
// mutate the result freely.
func Defaults() map[string]any {
	out := make(map[string]any, len(catalog))
	for _, def := range catalog {
		out[def.Key] = cloneValue(def.Default)
	}
	return out
}

// Validate checks value against key's constraint. Unknown keys are rejected,
// never silently stored.
func Validate(key string, value any) error {
	def, err := Definition(key)
	if err != nil {
		return err
	}
	if err := def.Constraint.Check(value); err != nil {
		return &domain.InvalidValueError{Key: key, Detail: err.Error()}
	}
	return nil
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []string:
		return append([]string(nil), t...)
	case []any:
		return append([]any(nil), t...)
	default:
		return v
	}
}
