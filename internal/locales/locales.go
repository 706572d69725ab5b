// Package locales provides locale display names and locale list helpers
// for the filter UI.
package locales

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DisplayName returns a human readable label for a locale code, e.g.
// "de" -> "German", "pt-BR" -> "Brazilian Portuguese". Unparseable codes
// are returned unchanged so filter chips never render empty.
func DisplayName(code string) string {
	if code == "" {
		return ""
	}

	tag, err := language.Parse(code)
	if err != nil {
		return code
	}

	name := display.English.Tags().Name(tag)
	if name == "" || strings.EqualFold(name, "root") {
		return code
	}

	return name
}

// Label returns "Display Name (code)" for use in dropdowns and chips.
func Label(code string) string {
	name := DisplayName(code)
	if name == "" || name == code {
		return code
	}

	return name + " (" + code + ")"
}

// Union merges locale code lists into one deduplicated, sorted list.
// Empty codes are dropped.
func Union(lists ...[]string) []string {
	seen := make(map[string]struct{})

	var out []string

	for _, list := range lists {
		for _, code := range list {
			if code == "" {
				continue
			}

			if _, ok := seen[code]; ok {
				continue
			}

			seen[code] = struct{}{}
			out = append(out, code)
		}
	}

	sort.Strings(out)

	return out
}
