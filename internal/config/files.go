// Package config provides file operations for configuration management.
//
// This file contains platform directory resolution and config file
// discovery helpers.
package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

//go:embed config.tpl.yml
var templateFS embed.FS

const appDirName = "bundletui"

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getXDGConfigDir(), "config.yml")
}

// CreateDefaultConfigFile creates a default configuration file from the
// embedded template and returns its path. An existing file is left alone.
func CreateDefaultConfigFile() (string, error) {
	configDir := getXDGConfigDir()
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")
	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}

	templateData, err := templateFS.ReadFile("config.tpl.yml")
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}

	if err := os.WriteFile(configPath, templateData, 0o600); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}

	return configPath, nil
}

// FindDefaultConfigPath locates an existing config file, checking the
// platform config directory first and the working directory second.
func FindDefaultConfigPath() (string, bool) {
	configPath := GetDefaultConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		return configPath, true
	}

	if _, err := os.Stat("config.yml"); err == nil {
		return "config.yml", true
	}

	return "", false
}

// getXDGConfigDir returns the platform-appropriate config directory.
func getXDGConfigDir() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appDirName)
		}
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return appDirName
	}

	return filepath.Join(home, ".config", appDirName)
}

// getXDGCacheDir returns the platform-appropriate cache directory.
func getXDGCacheDir() string {
	if runtime.GOOS == "windows" {
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appDirName)
		}
	}

	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appDirName)
	}

	return filepath.Join(home, ".cache", appDirName)
}

// IsSOPSEncrypted reports whether a config file carries SOPS metadata.
func IsSOPSEncrypted(path string, data []byte) bool {
	if strings.HasSuffix(path, ".enc.yml") || strings.HasSuffix(path, ".enc.yaml") {
		return true
	}

	return strings.Contains(string(data), "sops:") &&
		strings.Contains(string(data), "mac:")
}
