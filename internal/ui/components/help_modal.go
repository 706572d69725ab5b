package components

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// HelpModal represents a modal dialog showing keybindings and usage information
type HelpModal struct {
	*tview.TextView
	app *App
}

// NewHelpModal creates a new help modal
func NewHelpModal() *HelpModal {
	textView := tview.NewTextView()
	textView.SetDynamicColors(true)
	textView.SetScrollable(true)
	textView.SetWrap(false)
	textView.SetBorder(true)
	textView.SetTitle(" bundletui - Help & Keybindings ")
	textView.SetTitleColor(tcell.ColorYellow)
	textView.SetBorderColor(tcell.ColorYellow)

	helpText := `[yellow]Searching:[-]
  [white]F or /[-]                    Open the filter form
  [white]R / F5[-]                    Re-run the current search
  [white]C[-]                        Focus the filter chips

[yellow]Filter form:[-]
  [white]Tab[-]                       Move between fields and buttons
  [white]Enter[-]                     Open dropdown / press button
  [white]Escape[-]                    Close the form without searching

  Theme, theme type and locale are required before Search
  is enabled. Words narrow results to entries whose key or
  value contains at least one of them (case-sensitive).

[yellow]Chips:[-]
  [white]Left / Right[-]              Select a chip
  [white]Enter / Delete[-]            Remove the chip and re-run the search
  [white]Escape / Tab[-]              Back to the results table

[yellow]Results table:[-]
  [white]Arrow Keys / jk[-]           Scroll entries
  [white]gg / G[-]                    Jump to first / last entry
  [white]PgUp / PgDn[-]               Page through entries

[yellow]General:[-]
  [white]?[-]                         Toggle this help
  [white]Q[-]                         Quit`

	textView.SetText(helpText)

	return &HelpModal{
		TextView: textView,
	}
}

// SetApp sets the application reference
func (hm *HelpModal) SetApp(app *App) {
	hm.app = app

	hm.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEsc,
			event.Key() == tcell.KeyRune && event.Rune() == '?',
			event.Key() == tcell.KeyRune && event.Rune() == 'q':
			hm.Hide()

			return nil
		}

		return event
	})
}

// Show displays the help modal
func (hm *HelpModal) Show() {
	if hm.app == nil || hm.app.pages.HasPage(pageHelp) {
		return
	}

	hm.app.lastFocus = hm.app.GetFocus()
	hm.app.pages.AddPage(pageHelp, createModalLayout(hm, 64, 30), true, true)
	hm.app.SetFocus(hm)
}

// Hide removes the help modal
func (hm *HelpModal) Hide() {
	if hm.app == nil || !hm.app.pages.HasPage(pageHelp) {
		return
	}

	hm.app.pages.RemovePage(pageHelp)

	if hm.app.lastFocus != nil {
		hm.app.SetFocus(hm.app.lastFocus)
	} else {
		hm.app.SetFocus(hm.app.bundleTable)
	}
}
