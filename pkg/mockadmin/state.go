// Package mockadmin provides an in-process mock of the admin REST API for
// tests and for the standalone bundle-mock-api server. State is seeded
// deterministically so tests can assert on exact payloads.
package mockadmin

import (
	"fmt"
	"sort"
	"sync"
)

// MockRealm holds the locale settings of one seeded realm plus its
// message bundle overrides.
type MockRealm struct {
	Name                        string
	InternationalizationEnabled bool
	SupportedLocales            []string
	DefaultLocale               string

	// Overrides maps locale -> key -> value. Overrides win over theme
	// source messages when bundles are resolved.
	Overrides map[string]map[string]string
}

// MockTheme describes one installed theme within a theme type.
type MockTheme struct {
	Name    string   `json:"name"`
	Locales []string `json:"locales,omitempty"`
}

// bundleKey identifies one source message bundle.
type bundleKey struct {
	Theme     string
	ThemeType string
	Locale    string
}

// MockState is the shared mutable state behind the mock handlers.
type MockState struct {
	mu     sync.RWMutex
	Realms map[string]*MockRealm
	Themes map[string][]MockTheme // theme type -> themes

	// Source bundles keyed by theme/themeType/locale.
	Bundles map[bundleKey]map[string]string

	// Users accepted by the password grant. Key: username.
	Users map[string]string

	// Tokens issued by the token endpoint.
	tokens map[string]struct{}
}

// NewMockState builds a state with a deterministic seed: one master realm,
// base and custom themes, English and German source bundles and a couple of
// realm overrides.
func NewMockState() *MockState {
	state := &MockState{
		Realms:  make(map[string]*MockRealm),
		Themes:  make(map[string][]MockTheme),
		Bundles: make(map[bundleKey]map[string]string),
		Users:   map[string]string{"admin": "admin"},
		tokens:  make(map[string]struct{}),
	}

	state.Realms["master"] = &MockRealm{
		Name:                        "master",
		InternationalizationEnabled: true,
		SupportedLocales:            []string{"en", "de", "fr"},
		DefaultLocale:               "en",
		Overrides: map[string]map[string]string{
			"en": {
				"loginTitle": "Sign in to Example Corp",
			},
			"de": {
				"loginTitle": "Bei Example Corp anmelden",
			},
		},
	}

	state.Themes["login"] = []MockTheme{
		{Name: "base", Locales: []string{"en", "de", "fr"}},
		{Name: "custom", Locales: []string{"en", "de"}},
	}
	state.Themes["account"] = []MockTheme{
		{Name: "base", Locales: []string{"en", "de", "fr"}},
	}
	state.Themes["admin"] = []MockTheme{
		{Name: "base", Locales: []string{"en"}},
	}

	state.Bundles[bundleKey{"base", "login", "en"}] = map[string]string{
		"loginTitle":       "Sign in to your account",
		"username":         "Username or email",
		"password":         "Password",
		"doLogIn":          "Sign In",
		"doForgotPassword": "Forgot Password?",
	}
	state.Bundles[bundleKey{"base", "login", "de"}] = map[string]string{
		"loginTitle":       "Melden Sie sich bei Ihrem Konto an",
		"username":         "Benutzername oder E-Mail",
		"password":         "Passwort",
		"doLogIn":          "Anmelden",
		"doForgotPassword": "Passwort vergessen?",
	}
	state.Bundles[bundleKey{"custom", "login", "en"}] = map[string]string{
		"loginTitle": "Welcome back",
		"username":   "Work email",
		"password":   "Password",
		"doLogIn":    "Continue",
	}
	state.Bundles[bundleKey{"base", "account", "en"}] = map[string]string{
		"accountTitle": "Edit Account",
		"email":        "Email",
		"firstName":    "First name",
		"lastName":     "Last name",
	}

	return state
}

// IssueToken validates the credentials and returns a fresh bearer token.
func (s *MockState) IssueToken(username, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	want, ok := s.Users[username]
	if !ok || want != password {
		return "", fmt.Errorf("invalid user credentials")
	}

	token := fmt.Sprintf("mock-token-%s-%d", username, len(s.tokens)+1)
	s.tokens[token] = struct{}{}

	return token, nil
}

// ValidToken reports whether the token was issued by this state. Tokens
// added via AddToken (for test setup) are also accepted.
func (s *MockState) ValidToken(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.tokens[token]

	return ok
}

// AddToken registers a pre-issued token, bypassing the token endpoint.
func (s *MockState) AddToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token] = struct{}{}
}

// GetRealm returns the seeded realm, or nil if unknown.
func (s *MockState) GetRealm(name string) *MockRealm {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.Realms[name]
}

// bundleEntry mirrors the wire shape of one resolved entry.
type bundleEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// EffectiveBundles resolves the message bundle for a theme, theme type and
// locale the way the real server does: source messages for the requested
// locale (falling back to the realm default locale when the bundle is
// missing), then realm overrides layered on top. When source is false only
// the overrides are returned. Entries come back sorted by key.
func (s *MockState) EffectiveBundles(realm, theme, themeType, locale string, source bool) ([]bundleEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.Realms[realm]
	if !ok {
		return nil, fmt.Errorf("realm not found")
	}

	merged := make(map[string]string)

	if source {
		bundle, ok := s.Bundles[bundleKey{theme, themeType, locale}]
		if !ok {
			bundle = s.Bundles[bundleKey{theme, themeType, r.DefaultLocale}]
		}

		for k, v := range bundle {
			merged[k] = v
		}
	}

	for k, v := range r.Overrides[locale] {
		merged[k] = v
	}

	entries := make([]bundleEntry, 0, len(merged))
	for k, v := range merged {
		entries = append(entries, bundleEntry{Key: k, Value: v})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })

	return entries, nil
}
