package models

import "slices"

// FilterForm holds the current (possibly uncommitted) filter values plus
// the baseline they were last reset to. Dirtiness is always measured
// against that baseline, not against the committed active filters.
type FilterForm struct {
	values   SearchCriteria
	baseline SearchCriteria
}

// NewFilterForm creates a form with all-empty defaults.
func NewFilterForm() *FilterForm {
	return &FilterForm{}
}

// Values returns a copy of the current field values.
func (f *FilterForm) Values() SearchCriteria {
	return f.values.Clone()
}

// SetTheme updates the theme field.
func (f *FilterForm) SetTheme(theme string) {
	f.values.Theme = theme
}

// SetThemeType updates the theme type field.
func (f *FilterForm) SetThemeType(themeType string) {
	f.values.ThemeType = themeType
}

// SetLocale updates the locale field.
func (f *FilterForm) SetLocale(locale string) {
	f.values.Locale = locale
}

// SetWords replaces the word list.
func (f *FilterForm) SetWords(words []string) {
	f.values.HasWords = slices.Clone(words)
}

// SetField updates one field by name. Scalar fields take the first value
// (or empty when none given); the word field takes the whole list.
func (f *FilterForm) SetField(field FilterField, values ...string) {
	switch field {
	case FieldTheme:
		f.values.Theme = firstOrEmpty(values)
	case FieldThemeType:
		f.values.ThemeType = firstOrEmpty(values)
	case FieldLocale:
		f.values.Locale = firstOrEmpty(values)
	case FieldHasWords:
		f.SetWords(values)
	}
}

// Reset replaces all fields with defaults merged with partial, and makes
// the result the new baseline. A nil partial is a full reset.
func (f *FilterForm) Reset(partial *SearchCriteria) {
	var next SearchCriteria
	if partial != nil {
		next = partial.Clone()
	}

	f.values = next
	f.baseline = next.Clone()
}

// ResetField returns a single field to its default, leaving the others
// untouched. The baseline is not moved: clearing a field of a dirty form
// keeps the form dirty unless it now matches the baseline again.
func (f *FilterForm) ResetField(field FilterField) {
	switch field {
	case FieldTheme:
		f.values.Theme = ""
	case FieldThemeType:
		f.values.ThemeType = ""
	case FieldLocale:
		f.values.Locale = ""
	case FieldHasWords:
		f.values.HasWords = nil
	}
}

// Valid reports whether the form can be submitted: theme, theme type and
// locale are each required. The word list is never validated.
func (f *FilterForm) Valid() bool {
	return f.values.Theme != "" && f.values.ThemeType != "" && f.values.Locale != ""
}

// Dirty reports whether the values differ from the last reset baseline.
func (f *FilterForm) Dirty() bool {
	return f.values.Theme != f.baseline.Theme ||
		f.values.ThemeType != f.baseline.ThemeType ||
		f.values.Locale != f.baseline.Locale ||
		!slices.Equal(f.values.HasWords, f.baseline.HasWords)
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}

	return values[0]
}
