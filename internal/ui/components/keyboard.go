package components

import (
	"github.com/gdamore/tcell/v2"
)

// setupKeyboardHandlers configures global keyboard shortcuts
func (a *App) setupKeyboardHandlers() {
	a.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// While the filter form or a modal is up, let it handle its own keys.
		if a.pages.HasPage(pageFilter) || a.pages.HasPage(pageHelp) {
			return event
		}

		// The chips bar consumes its own navigation keys when focused.
		if a.GetFocus() == a.chipsBar {
			return event
		}

		switch event.Key() {
		case tcell.KeyF5:
			a.refreshSearch()

			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q', 'Q':
				a.Stop()

				return nil
			case 'f', 'F', '/':
				a.openFilterPanel()

				return nil
			case 'r', 'R':
				a.refreshSearch()

				return nil
			case 'c', 'C':
				if a.chipsBar.HasChips() {
					a.SetFocus(a.chipsBar)
				}

				return nil
			case '?':
				a.helpModal.Show()

				return nil
			}
		}

		return event
	})
}

// refreshSearch re-commits the current criteria and refetches. Before the
// first search it opens the filter panel instead; a refresh with nothing
// committed has nothing to reload.
func (a *App) refreshSearch() {
	if !a.state.Searched() {
		a.openFilterPanel()

		return
	}

	a.state.Commit()
	a.afterCommit(a.snapshotCriteria())
}
