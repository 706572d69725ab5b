// Package models holds the filter state and search commit protocol that
// drive the message bundle table. All state in this package is owned by
// the UI event loop and mutated only through the operations defined here;
// fetch results are handed back to the loop via QueueUpdateDraw.
package models

import "strings"

// FilterField identifies one criterion of the search form.
type FilterField string

const (
	FieldTheme     FilterField = "theme"
	FieldThemeType FilterField = "themeType"
	FieldLocale    FilterField = "locale"
	FieldHasWords  FilterField = "hasWords"
)

// SearchCriteria is the filter form's value object. An empty string or
// empty slice means the field is unset. An unset locale falls back to the
// configured default locale at fetch time only; the stored value stays
// empty so it never shows up as an active filter.
type SearchCriteria struct {
	Theme     string
	ThemeType string
	Locale    string
	HasWords  []string
}

// Clone returns a deep copy, so callers can hold criteria across commits
// without seeing later mutations of the word list.
func (c SearchCriteria) Clone() SearchCriteria {
	out := c
	if c.HasWords != nil {
		out.HasWords = make([]string, len(c.HasWords))
		copy(out.HasWords, c.HasWords)
	}

	return out
}

// IsEmpty reports whether every field is unset.
func (c SearchCriteria) IsEmpty() bool {
	return c.Theme == "" && c.ThemeType == "" && c.Locale == "" && len(c.HasWords) == 0
}

// ParseWords splits free text into discrete search terms. Tokens are
// separated by any whitespace; an empty or all-whitespace input yields an
// empty list, never a list holding one empty string.
func ParseWords(raw string) []string {
	return strings.Fields(raw)
}
