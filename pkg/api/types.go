package api

import "time"

// Cache TTLs for different types of data.
const (
	// ThemeDataTTL covers the server's installed themes, which only change
	// on deploys.
	ThemeDataTTL = 1 * time.Hour

	// RealmDataTTL covers realm locale settings.
	RealmDataTTL = 15 * time.Minute
)

// ThemeInfo describes one installed theme within a theme type.
type ThemeInfo struct {
	Name    string   `json:"name"`
	Locales []string `json:"locales,omitempty"`
}

// RealmLocalization holds the locale settings of a realm.
type RealmLocalization struct {
	Realm                       string   `json:"realm"`
	InternationalizationEnabled bool     `json:"internationalizationEnabled"`
	SupportedLocales            []string `json:"supportedLocales"`
	DefaultLocale               string   `json:"defaultLocale"`
}

// BundleEntry is one resolved message bundle entry: a localization key and
// its value after theme override and locale fallback rules were applied
// server-side. Entries carry no identity beyond the key within a fetch and
// are re-created on every fetch.
type BundleEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// BundleQuery describes one effective message bundle lookup.
type BundleQuery struct {
	Realm     string
	Theme     string
	ThemeType string
	Locale    string
	// Source requests that entries defined directly in the theme's source
	// bundle are included alongside realm overrides.
	Source bool
}
