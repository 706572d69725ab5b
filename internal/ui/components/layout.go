package components

import (
	"github.com/rivo/tview"

	"bundletui/internal/ui/models"
)

// Page names for the pages container.
const (
	pageBundles = "bundles"
	pageFilter  = "filter"
	pageHelp    = "help"
)

// createMainLayout builds the main application layout.
func (a *App) createMainLayout() *tview.Flex {
	a.pages.AddPage(pageBundles, a.bundleTable, true, true)

	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.header, 1, 0, false).
		AddItem(a.chipsBar, 1, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.footer, 1, 0, false)
}

// setupComponentConnections wires up the interactions between components.
func (a *App) setupComponentConnections() {
	a.chipsBar.Update(a.state.ActiveFilters())
	a.bundleTable.SetSearched(a.state.Searched())
	a.helpModal.SetApp(a)
}

// afterCommit refreshes everything derived from a commit: chips, the
// searching flag, the footer count, and (once a search was submitted) the
// bundle fetch itself.
func (a *App) afterCommit(criteria SearchSnapshot) {
	a.chipsBar.Update(a.state.ActiveFilters())
	a.bundleTable.SetSearching(a.state.IsSearching())
	a.bundleTable.SetSearched(a.state.Searched())
	a.footer.UpdateActiveFilterCount(len(a.state.ActiveFilters()))

	if a.state.Searched() {
		a.fetchBundles(criteria.Generation, criteria.Criteria)
	}
}

// snapshotCriteria captures the committed criteria together with the
// generation that committed them, before any further form edits.
func (a *App) snapshotCriteria() SearchSnapshot {
	return SearchSnapshot{
		Generation: a.state.Generation(),
		Criteria:   a.state.Form().Values(),
	}
}

// submitSearch commits the current form, closes the filter panel and
// starts the fetch. The first call flips the table from its pre-search
// placeholder for good.
func (a *App) submitSearch() {
	if !a.state.Form().Valid() {
		return
	}

	a.state.SubmitSearch()
	a.closeFilterPanel()
	a.afterCommit(a.snapshotCriteria())
}

// resetSearch returns the form to defaults and commits the empty set.
func (a *App) resetSearch() {
	a.state.ResetSearch()
	a.filterPanel.SyncFromForm()
	a.afterCommit(a.snapshotCriteria())
}

// removeFilter drops one whole criterion via its chip.
func (a *App) removeFilter(field models.FilterField) {
	a.state.RemoveFilter(field)
	a.filterPanel.SyncFromForm()
	a.afterCommit(a.snapshotCriteria())
}

// removeFilterValue drops a single word via its chip.
func (a *App) removeFilterValue(field models.FilterField, value string) {
	a.state.RemoveFilterValue(field, value)
	a.filterPanel.SyncFromForm()
	a.afterCommit(a.snapshotCriteria())
}

// openFilterPanel shows the filter form as a modal page.
func (a *App) openFilterPanel() {
	if a.pages.HasPage(pageFilter) {
		return
	}

	a.lastFocus = a.GetFocus()
	a.filterPanel.SyncFromForm()
	a.pages.AddPage(pageFilter, createModalLayout(a.filterPanel, 60, 13), true, true)
	a.SetFocus(a.filterPanel)
}

// closeFilterPanel hides the filter form again.
func (a *App) closeFilterPanel() {
	if !a.pages.HasPage(pageFilter) {
		return
	}

	a.pages.RemovePage(pageFilter)

	if a.lastFocus != nil {
		a.SetFocus(a.lastFocus)
	} else {
		a.SetFocus(a.bundleTable)
	}
}

// createModalLayout centers a primitive with a fixed size over the page.
func createModalLayout(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}
