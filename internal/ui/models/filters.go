package models

// FilterSelection is one committed, non-empty criterion. Scalar fields
// carry a single value; the word field carries every term.
type FilterSelection struct {
	Field  FilterField
	Values []string
}

// ActiveFilters is the displayable projection of the last committed
// criteria, in fixed field order. It exists for the chips bar and for the
// "is searching" decision; the fetch always uses the criteria themselves.
type ActiveFilters []FilterSelection

// ProjectActiveFilters computes the active filter set from criteria by
// dropping every unset field. It is a pure function recomputed wholesale
// on each commit, never patched in place.
func ProjectActiveFilters(c SearchCriteria) ActiveFilters {
	var active ActiveFilters

	if c.Theme != "" {
		active = append(active, FilterSelection{Field: FieldTheme, Values: []string{c.Theme}})
	}

	if c.ThemeType != "" {
		active = append(active, FilterSelection{Field: FieldThemeType, Values: []string{c.ThemeType}})
	}

	if c.Locale != "" {
		active = append(active, FilterSelection{Field: FieldLocale, Values: []string{c.Locale}})
	}

	if len(c.HasWords) == 0 {
		return active
	}

	words := make([]string, len(c.HasWords))
	copy(words, c.HasWords)

	return append(active, FilterSelection{Field: FieldHasWords, Values: words})
}

// IsEmpty reports whether no filter is active.
func (a ActiveFilters) IsEmpty() bool {
	return len(a) == 0
}

// Contains reports whether the given field is active.
func (a ActiveFilters) Contains(field FilterField) bool {
	for _, sel := range a {
		if sel.Field == field {
			return true
		}
	}

	return false
}
