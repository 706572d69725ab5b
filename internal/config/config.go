// Package config provides configuration management for the bundletui application.
//
// This package handles loading configuration from multiple sources with proper
// precedence ordering:
//  1. Command-line flags (highest priority)
//  2. Environment variables
//  3. Configuration files (YAML format)
//  4. Default values (lowest priority)
//
// The package follows platform-appropriate standards for configuration and
// cache file locations, providing a clean and predictable user experience
// across Windows, macOS, and Linux.
//
// Configuration Sources:
//
// Environment Variables:
//   - BUNDLETUI_ADDR: Admin server base URL
//   - BUNDLETUI_REALM: Realm whose message bundles are browsed (default: "master")
//   - BUNDLETUI_AUTH_REALM: Realm used for the token endpoint (default: "master")
//   - BUNDLETUI_USER: Username for password-based auth
//   - BUNDLETUI_PASSWORD: Password for password-based auth
//   - BUNDLETUI_TOKEN: Static bearer token (skips the token endpoint)
//   - BUNDLETUI_INSECURE: Skip TLS verification ("true"/"false")
//   - BUNDLETUI_DEBUG: Enable debug logging ("true"/"false")
//   - BUNDLETUI_CACHE_DIR: Custom cache directory (overrides platform defaults)
//
// Configuration File Format (YAML):
//
//	addr: "https://auth.example.com"
//	realm: "master"
//	user: "admin"
//	password: "secret"
//	default_locale: "en"
//	supported_locales: ["en", "de", "fr"]
//	insecure: false
//	debug: true
//	cache_dir: "/custom/cache/path"  # Optional: overrides platform defaults
//
// Config files encrypted with SOPS are decrypted transparently; individual
// sensitive fields may alternatively carry age-encrypted values (see
// encryption.go).
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/getsops/sops/v3/decrypt"
	"gopkg.in/yaml.v3"
)

const (
	defaultRealm     = "master"
	defaultAuthRealm = "master"
	defaultUILocale  = "en"
	trueString       = "true"
)

// DefaultLocale is the locale substituted at fetch time when no locale
// filter is selected. The stored criteria value stays empty so the
// substitution never shows up as an active filter.
const DefaultLocale = "en"

// DebugEnabled is a global flag to enable debug logging throughout the
// application.
//
// This variable is set during configuration parsing and used by various
// components to determine whether to emit debug-level log messages.
var DebugEnabled bool

// DebugLog logs a message when debug mode is enabled. It is a convenience
// for packages that have no injected logger.
func DebugLog(format string, args ...interface{}) {
	if DebugEnabled {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// Config represents the complete application configuration.
type Config struct {
	// Connection settings.
	Addr      string `yaml:"addr"`
	Realm     string `yaml:"realm"`
	AuthRealm string `yaml:"auth_realm"`
	User      string `yaml:"user"`
	Password  string `yaml:"password"`
	Token     string `yaml:"token"`
	Insecure  bool   `yaml:"insecure"`

	// Locale settings for the message bundle browser.
	DefaultLocale    string   `yaml:"default_locale"`
	SupportedLocales []string `yaml:"supported_locales"`
	DefaultLocales   []string `yaml:"default_locales"`
	UILocale         string   `yaml:"ui_locale"`

	// Runtime settings.
	Debug    bool   `yaml:"debug"`
	CacheDir string `yaml:"cache_dir"`
}

// NewConfig creates a configuration populated from environment variables.
func NewConfig() *Config {
	return &Config{
		Addr:      os.Getenv("BUNDLETUI_ADDR"),
		Realm:     os.Getenv("BUNDLETUI_REALM"),
		AuthRealm: os.Getenv("BUNDLETUI_AUTH_REALM"),
		User:      os.Getenv("BUNDLETUI_USER"),
		Password:  os.Getenv("BUNDLETUI_PASSWORD"),
		Token:     os.Getenv("BUNDLETUI_TOKEN"),
		Insecure:  strings.ToLower(os.Getenv("BUNDLETUI_INSECURE")) == trueString,
		Debug:     strings.ToLower(os.Getenv("BUNDLETUI_DEBUG")) == trueString,
		CacheDir:  os.Getenv("BUNDLETUI_CACHE_DIR"),
	}
}

// MergeWithFile loads a YAML config file and merges it into the receiver.
// Values already set (flags or environment) win over file values.
// SOPS-encrypted files are decrypted transparently; age-encrypted fields
// are decrypted after unmarshaling.
func (c *Config) MergeWithFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	if IsSOPSEncrypted(path, data) {
		data, err = decrypt.Data(data, "yaml")
		if err != nil {
			return fmt.Errorf("decrypt SOPS config file: %w", err)
		}
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if err := DecryptSensitiveFields(&fileCfg); err != nil {
		return fmt.Errorf("decrypt config fields: %w", err)
	}

	if c.Addr == "" {
		c.Addr = fileCfg.Addr
	}
	if c.Realm == "" {
		c.Realm = fileCfg.Realm
	}
	if c.AuthRealm == "" {
		c.AuthRealm = fileCfg.AuthRealm
	}
	if c.User == "" {
		c.User = fileCfg.User
	}
	if c.Password == "" {
		c.Password = fileCfg.Password
	}
	if c.Token == "" {
		c.Token = fileCfg.Token
	}
	if !c.Insecure {
		c.Insecure = fileCfg.Insecure
	}
	if c.DefaultLocale == "" {
		c.DefaultLocale = fileCfg.DefaultLocale
	}
	if len(c.SupportedLocales) == 0 {
		c.SupportedLocales = fileCfg.SupportedLocales
	}
	if len(c.DefaultLocales) == 0 {
		c.DefaultLocales = fileCfg.DefaultLocales
	}
	if c.UILocale == "" {
		c.UILocale = fileCfg.UILocale
	}
	if !c.Debug {
		c.Debug = fileCfg.Debug
	}
	if c.CacheDir == "" {
		c.CacheDir = fileCfg.CacheDir
	}

	return nil
}

// SetDefaults fills in default values for fields that remain unset.
func (c *Config) SetDefaults() {
	if c.Realm == "" {
		c.Realm = defaultRealm
	}
	if c.AuthRealm == "" {
		c.AuthRealm = defaultAuthRealm
	}
	if c.DefaultLocale == "" {
		c.DefaultLocale = DefaultLocale
	}
	if len(c.DefaultLocales) == 0 {
		c.DefaultLocales = []string{"en", "de", "es", "fr", "it", "ja", "pt-BR", "zh-CN"}
	}
	if c.UILocale == "" {
		c.UILocale = defaultUILocale
	}
	if c.CacheDir == "" {
		c.CacheDir = getXDGCacheDir()
	}
}

// Validate checks that required fields are set and well formed.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("missing required configuration: addr (set --addr, BUNDLETUI_ADDR, or addr in the config file)")
	}

	if !strings.HasPrefix(c.Addr, "http://") && !strings.HasPrefix(c.Addr, "https://") {
		return fmt.Errorf("addr must start with http:// or https://, got %q", c.Addr)
	}

	if c.Token == "" {
		if c.User == "" {
			return errors.New("missing credentials: set either token, or user and password")
		}
		if c.Password == "" {
			return errors.New("missing password for user " + c.User)
		}
	}

	return nil
}

// IsUsingTokenAuth reports whether a static bearer token is configured.
func (c *Config) IsUsingTokenAuth() bool {
	return c.Token != ""
}

// GetAddr returns the admin server URL.
func (c *Config) GetAddr() string {
	return c.Addr
}

// GetRealm returns the realm whose bundles are browsed.
func (c *Config) GetRealm() string {
	return c.Realm
}

// GetAuthRealm returns the realm used for authentication.
func (c *Config) GetAuthRealm() string {
	return c.AuthRealm
}

// GetUser returns the admin username.
func (c *Config) GetUser() string {
	return c.User
}

// GetPassword returns the password for password authentication.
func (c *Config) GetPassword() string {
	return c.Password
}

// GetToken returns the pre-issued bearer token, if any.
func (c *Config) GetToken() string {
	return c.Token
}

// GetInsecure reports whether TLS certificate verification is skipped.
func (c *Config) GetInsecure() bool {
	return c.Insecure
}

// ExpandHomePath expands a leading ~ to the user's home directory.
func ExpandHomePath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
