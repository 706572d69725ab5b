package components

import "testing"

func TestWithUnsetOption(t *testing.T) {
	options := withUnsetOption([]string{"base", "custom"})

	if len(options) != 3 || options[0] != unsetOptionLabel {
		t.Fatalf("expected unset entry first, got %v", options)
	}
}

func TestOptionValue(t *testing.T) {
	options := withUnsetOption([]string{"base", "custom"})

	if got := optionValue(options, 0); got != "" {
		t.Errorf("unset entry should map to empty value, got %q", got)
	}

	if got := optionValue(options, 1); got != "base" {
		t.Errorf("expected base, got %q", got)
	}

	if got := optionValue(options, 99); got != "" {
		t.Errorf("out of range index should map to empty value, got %q", got)
	}

	if got := optionValue(options, -1); got != "" {
		t.Errorf("negative index should map to empty value, got %q", got)
	}
}

func TestOptionIndex(t *testing.T) {
	options := withUnsetOption([]string{"base", "custom"})

	if got := optionIndex(options, ""); got != 0 {
		t.Errorf("empty value should map to the unset entry, got %d", got)
	}

	if got := optionIndex(options, "custom"); got != 2 {
		t.Errorf("expected index 2, got %d", got)
	}

	if got := optionIndex(options, "missing"); got != 0 {
		t.Errorf("unknown value should fall back to the unset entry, got %d", got)
	}
}
