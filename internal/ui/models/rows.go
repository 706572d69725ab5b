package models

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"bundletui/pkg/api"
)

// FilterRowsByWords keeps only rows where at least one word is a
// substring of the row's key or value. Matching is case-sensitive and OR
// across words. An empty word list keeps every row.
func FilterRowsByWords(rows []api.BundleEntry, words []string) []api.BundleEntry {
	if len(words) == 0 {
		return rows
	}

	filtered := make([]api.BundleEntry, 0, len(rows))

	for _, row := range rows {
		for _, word := range words {
			if strings.Contains(row.Key, word) || strings.Contains(row.Value, word) {
				filtered = append(filtered, row)
				break
			}
		}
	}

	return filtered
}

// SortRowsByKey sorts rows in place by key using locale-aware ordering.
// A nil collator falls back to plain byte order.
func SortRowsByKey(rows []api.BundleEntry, col *collate.Collator) {
	if col == nil {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Key < rows[j].Key
		})

		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return col.CompareString(rows[i].Key, rows[j].Key) < 0
	})
}

// NewKeyCollator builds the collator used for key ordering from a UI
// locale code. Unknown codes fall back to English collation.
func NewKeyCollator(uiLocale string) *collate.Collator {
	tag, err := language.Parse(uiLocale)
	if err != nil {
		tag = language.English
	}

	return collate.New(tag)
}
