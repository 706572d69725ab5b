package models

import (
	"reflect"
	"testing"
)

func TestProjectActiveFilters_AllEmpty(t *testing.T) {
	active := ProjectActiveFilters(SearchCriteria{})

	if !active.IsEmpty() {
		t.Errorf("expected empty projection, got %+v", active)
	}
}

func TestProjectActiveFilters_KeepsOnlyNonEmptyFields(t *testing.T) {
	active := ProjectActiveFilters(SearchCriteria{
		Theme:    "base",
		Locale:   "en",
		HasWords: []string{"login", "welcome"},
	})

	expected := ActiveFilters{
		{Field: FieldTheme, Values: []string{"base"}},
		{Field: FieldLocale, Values: []string{"en"}},
		{Field: FieldHasWords, Values: []string{"login", "welcome"}},
	}

	if !reflect.DeepEqual(active, expected) {
		t.Errorf("projection mismatch:\n got %+v\nwant %+v", active, expected)
	}

	if active.Contains(FieldThemeType) {
		t.Error("unset theme type must not be projected")
	}
}

func TestProjectActiveFilters_FixedFieldOrder(t *testing.T) {
	active := ProjectActiveFilters(SearchCriteria{
		Theme:     "base",
		ThemeType: "login",
		Locale:    "en",
		HasWords:  []string{"w"},
	})

	order := []FilterField{FieldTheme, FieldThemeType, FieldLocale, FieldHasWords}
	for i, sel := range active {
		if sel.Field != order[i] {
			t.Fatalf("expected field %s at position %d, got %s", order[i], i, sel.Field)
		}
	}
}

func TestProjectActiveFilters_CopiesWordList(t *testing.T) {
	criteria := SearchCriteria{HasWords: []string{"foo"}}

	active := ProjectActiveFilters(criteria)
	criteria.HasWords[0] = "mutated"

	if active[0].Values[0] != "foo" {
		t.Error("projection must not alias the criteria word list")
	}
}
