package models

import (
	"reflect"
	"testing"

	"bundletui/pkg/api"
)

func TestFilterRowsByWords(t *testing.T) {
	rows := []api.BundleEntry{
		{Key: "a.b", Value: "Hello"},
		{Key: "c.d", Value: "World"},
	}

	tests := []struct {
		name     string
		words    []string
		expected []string // expected keys
	}{
		{"substring of value", []string{"ell"}, []string{"a.b"}},
		{"no match", []string{"q"}, []string{}},
		{"empty word list keeps all", nil, []string{"a.b", "c.d"}},
		{"substring of key", []string{"c.d"}, []string{"c.d"}},
		{"or across words", []string{"q", "World"}, []string{"c.d"}},
		{"case sensitive", []string{"hello"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRowsByWords(rows, tt.words)

			keys := make([]string, 0, len(got))
			for _, row := range got {
				keys = append(keys, row.Key)
			}

			if len(keys) != len(tt.expected) {
				t.Fatalf("expected keys %v, got %v", tt.expected, keys)
			}
			for i := range keys {
				if keys[i] != tt.expected[i] {
					t.Fatalf("expected keys %v, got %v", tt.expected, keys)
				}
			}
		})
	}
}

func TestFilterRowsByWords_MatchingRowAppearsOnce(t *testing.T) {
	rows := []api.BundleEntry{
		{Key: "greeting", Value: "greeting text"},
	}

	got := FilterRowsByWords(rows, []string{"greet", "text"})

	if len(got) != 1 {
		t.Errorf("a row matching several words must appear once, got %d rows", len(got))
	}
}

func TestSortRowsByKey(t *testing.T) {
	rows := []api.BundleEntry{
		{Key: "c.d", Value: "World"},
		{Key: "a.b", Value: "Hello"},
		{Key: "b.c", Value: "Mid"},
	}

	SortRowsByKey(rows, NewKeyCollator("en"))

	keys := []string{rows[0].Key, rows[1].Key, rows[2].Key}
	if !reflect.DeepEqual(keys, []string{"a.b", "b.c", "c.d"}) {
		t.Errorf("unexpected order: %v", keys)
	}
}

func TestSortRowsByKey_NilCollator(t *testing.T) {
	rows := []api.BundleEntry{
		{Key: "b"},
		{Key: "a"},
	}

	SortRowsByKey(rows, nil)

	if rows[0].Key != "a" {
		t.Errorf("expected byte-order fallback, got %v", rows)
	}
}

func TestSortRowsByKey_LocaleAware(t *testing.T) {
	// Swedish sorts ö after z; English sorts it near o.
	rows := []api.BundleEntry{
		{Key: "öl"},
		{Key: "zebra"},
	}

	SortRowsByKey(rows, NewKeyCollator("sv"))

	if rows[0].Key != "zebra" {
		t.Errorf("Swedish collation should order zebra before öl, got %v", rows)
	}

	rows = []api.BundleEntry{
		{Key: "zebra"},
		{Key: "öl"},
	}

	SortRowsByKey(rows, NewKeyCollator("en"))

	if rows[0].Key != "öl" {
		t.Errorf("English collation should order öl before zebra, got %v", rows)
	}
}

func TestNewKeyCollator_UnknownLocale(t *testing.T) {
	if NewKeyCollator("definitely not a locale") == nil {
		t.Error("unknown locales must fall back to a usable collator")
	}
}
