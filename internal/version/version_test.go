package version

import (
	"strings"
	"testing"
)

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()

	if info.GoVersion == "" {
		t.Error("expected go version to be set")
	}
	if info.OS == "" || info.Arch == "" {
		t.Error("expected OS and arch to be set")
	}
}

func TestGetVersionString(t *testing.T) {
	s := GetVersionString()
	if !strings.HasPrefix(s, "v") {
		t.Errorf("expected version string to start with v, got %q", s)
	}
}

func TestGetFullVersionString(t *testing.T) {
	s := GetFullVersionString()
	if !strings.Contains(s, "(") || !strings.Contains(s, ")") {
		t.Errorf("expected commit parenthetical in %q", s)
	}
}
