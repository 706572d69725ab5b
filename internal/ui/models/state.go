package models

// SearchState owns the filter form, the committed active filters, the
// refetch generation token and the sticky searched flag. It is the only
// writer of all four; every mutation goes through the operations below,
// on the UI event loop.
type SearchState struct {
	form       *FilterForm
	active     ActiveFilters
	generation uint64
	searched   bool
}

// NewSearchState creates the initial, not-yet-searched state with an
// all-empty form.
func NewSearchState() *SearchState {
	return &SearchState{form: NewFilterForm()}
}

// Form returns the filter form for field edits.
func (s *SearchState) Form() *FilterForm {
	return s.form
}

// ActiveFilters returns the last committed filter projection.
func (s *SearchState) ActiveFilters() ActiveFilters {
	return s.active
}

// Generation returns the current refetch token. A fetch result may only
// be rendered while its generation still equals this value.
func (s *SearchState) Generation() uint64 {
	return s.generation
}

// Searched reports whether a search has ever been submitted. Once true it
// stays true for the lifetime of the state.
func (s *SearchState) Searched() bool {
	return s.searched
}

// IsSearching reports whether any filter is currently active.
func (s *SearchState) IsSearching() bool {
	return !s.active.IsEmpty()
}

// Commit atomically replaces the active filters with a fresh projection
// of the form's current values and bumps the generation token. The bump
// is unconditional: committing unchanged values still triggers a refetch.
func (s *SearchState) Commit() {
	s.active = ProjectActiveFilters(s.form.Values())
	s.generation++
}

// SubmitSearch marks that a search has been performed, then commits. The
// caller is responsible for closing the filter panel.
func (s *SearchState) SubmitSearch() {
	s.searched = true
	s.Commit()
}

// ResetSearch returns the form to its defaults and commits, yielding an
// empty active filter set. The searched flag is deliberately left alone.
func (s *SearchState) ResetSearch() {
	s.form.Reset(nil)
	s.Commit()
}

// RemoveFilter clears one whole field and commits, leaving the other
// fields untouched.
func (s *SearchState) RemoveFilter(field FilterField) {
	s.form.ResetField(field)
	s.Commit()
}

// RemoveFilterValue removes a single word (first exact match, order of
// the rest preserved) from the word list and commits. For scalar fields
// the value passes through unchanged; the commit still happens.
func (s *SearchState) RemoveFilterValue(field FilterField, value string) {
	if field == FieldHasWords {
		words := s.form.Values().HasWords
		for i, w := range words {
			if w == value {
				s.form.SetWords(append(words[:i], words[i+1:]...))
				break
			}
		}
	}

	s.Commit()
}
