package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfigReadsEnvironment(t *testing.T) {
	t.Setenv("BUNDLETUI_ADDR", "https://auth.example.com")
	t.Setenv("BUNDLETUI_REALM", "demo")
	t.Setenv("BUNDLETUI_INSECURE", "true")

	cfg := NewConfig()

	if cfg.Addr != "https://auth.example.com" {
		t.Errorf("expected addr from env, got %q", cfg.Addr)
	}
	if cfg.Realm != "demo" {
		t.Errorf("expected realm from env, got %q", cfg.Realm)
	}
	if !cfg.Insecure {
		t.Error("expected insecure to be true")
	}
}

func TestSetDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()

	if cfg.Realm != "master" {
		t.Errorf("expected default realm master, got %q", cfg.Realm)
	}
	if cfg.AuthRealm != "master" {
		t.Errorf("expected default auth realm master, got %q", cfg.AuthRealm)
	}
	if cfg.DefaultLocale != DefaultLocale {
		t.Errorf("expected default locale %q, got %q", DefaultLocale, cfg.DefaultLocale)
	}
	if len(cfg.DefaultLocales) == 0 {
		t.Error("expected non-empty default locale list")
	}
	if cfg.CacheDir == "" {
		t.Error("expected cache dir to be set")
	}
}

func TestMergeWithFilePrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := []byte("addr: \"https://file.example.com\"\nrealm: \"filerealm\"\nuser: \"fileuser\"\npassword: \"filepass\"\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := &Config{Addr: "https://flag.example.com"}
	if err := cfg.MergeWithFile(path); err != nil {
		t.Fatalf("merge: %v", err)
	}

	// Pre-set values win over file values.
	if cfg.Addr != "https://flag.example.com" {
		t.Errorf("expected flag addr to win, got %q", cfg.Addr)
	}
	// Unset values are taken from the file.
	if cfg.Realm != "filerealm" {
		t.Errorf("expected realm from file, got %q", cfg.Realm)
	}
	if cfg.User != "fileuser" || cfg.Password != "filepass" {
		t.Errorf("expected credentials from file, got %q/%q", cfg.User, cfg.Password)
	}
}

func TestMergeWithFileMissing(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.MergeWithFile(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"missing addr", Config{}, true},
		{"bad scheme", Config{Addr: "auth.example.com", Token: "tok"}, true},
		{"token auth", Config{Addr: "https://auth.example.com", Token: "tok"}, false},
		{"password auth", Config{Addr: "https://auth.example.com", User: "admin", Password: "pw"}, false},
		{"user without password", Config{Addr: "https://auth.example.com", User: "admin"}, true},
		{"no credentials", Config{Addr: "https://auth.example.com"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsUsingTokenAuth(t *testing.T) {
	cfg := Config{Token: "tok"}
	if !cfg.IsUsingTokenAuth() {
		t.Error("expected token auth")
	}

	cfg = Config{User: "admin", Password: "pw"}
	if cfg.IsUsingTokenAuth() {
		t.Error("expected password auth")
	}
}

func TestExpandHomePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	got := ExpandHomePath("~/cache")
	want := filepath.Join(home, "cache")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if got := ExpandHomePath("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path should pass through, got %q", got)
	}
}

func TestIsSOPSEncrypted(t *testing.T) {
	if !IsSOPSEncrypted("c.enc.yml", nil) {
		t.Error("expected .enc.yml suffix to be detected")
	}

	data := []byte("addr: x\nsops:\n  mac: ENC[AES256_GCM...]\n")
	if !IsSOPSEncrypted("c.yml", data) {
		t.Error("expected sops metadata to be detected")
	}

	if IsSOPSEncrypted("c.yml", []byte("addr: x\n")) {
		t.Error("plain file misdetected as encrypted")
	}
}
