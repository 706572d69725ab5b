package components

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"bundletui/internal/ui/theme"
	"bundletui/pkg/api"
)

// BundleTable displays the fetched message bundle entries in a fixed
// two-column key/value table. Before the first search it shows an
// instruction placeholder; after that an empty fetch shows a distinct
// "no matches" state.
type BundleTable struct {
	*tview.Table
	app       *App
	rows      []api.BundleEntry
	searched  bool
	searching bool
	pendingG  bool
}

// NewBundleTable creates the results table.
func NewBundleTable(app *App) *BundleTable {
	bt := &BundleTable{
		app: app,
	}

	bt.Table = tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0).
		SetSelectedStyle(tcell.StyleDefault.Background(theme.Colors.Selection).Foreground(theme.Colors.Primary))

	bt.SetBorder(true)
	bt.SetBorderColor(theme.Colors.Border)
	bt.SetTitleColor(theme.Colors.Title)

	bt.Table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if handleVimTopBottomRune(event, &bt.pendingG,
			func() { jumpTableTop(bt.Table) },
			func() { jumpTableBottom(bt.Table) }) {
			return nil
		}

		return event
	})

	bt.render()

	return bt
}

// SetRows replaces the displayed rows with a fresh fetch result. The
// previous rows are discarded entirely; entries have no identity across
// fetches.
func (bt *BundleTable) SetRows(rows []api.BundleEntry) {
	bt.rows = rows
	bt.render()
}

// SetSearched flips the table out of its pre-search placeholder. The flag
// never flips back.
func (bt *BundleTable) SetSearched(searched bool) {
	if bt.searched == searched {
		return
	}

	bt.searched = searched
	bt.render()
}

// SetSearching updates the filtered indicator in the title.
func (bt *BundleTable) SetSearching(searching bool) {
	bt.searching = searching
	bt.updateTitle()
}

// Rows returns the currently displayed entries.
func (bt *BundleTable) Rows() []api.BundleEntry {
	return bt.rows
}

func (bt *BundleTable) updateTitle() {
	title := " Message Bundles "
	if bt.searching {
		title = " Message Bundles (filtered) "
	}

	bt.SetTitle(title)
}

func (bt *BundleTable) render() {
	bt.Clear()
	bt.updateTitle()

	if !bt.searched {
		bt.renderPlaceholder("Press [yellow]f[-] to choose a theme, theme type and locale, then search.")

		return
	}

	bt.setupTableHeaders()

	if len(bt.rows) == 0 {
		cell := tview.NewTableCell("No messages match your search").
			SetTextColor(theme.Colors.Secondary).
			SetAlign(tview.AlignLeft).
			SetSelectable(false)
		bt.SetCell(1, 0, cell)

		return
	}

	for i, row := range bt.rows {
		keyCell := tview.NewTableCell(row.Key).
			SetTextColor(theme.Colors.Tertiary).
			SetAlign(tview.AlignLeft).
			SetExpansion(1)
		valueCell := tview.NewTableCell(row.Value).
			SetTextColor(theme.Colors.Primary).
			SetAlign(tview.AlignLeft).
			SetExpansion(2)

		bt.SetCell(i+1, 0, keyCell)
		bt.SetCell(i+1, 1, valueCell)
	}

	bt.ScrollToBeginning()
}

func (bt *BundleTable) renderPlaceholder(text string) {
	cell := tview.NewTableCell(text).
		SetTextColor(theme.Colors.Secondary).
		SetAlign(tview.AlignLeft).
		SetSelectable(false)
	bt.SetCell(0, 0, cell)
}

func (bt *BundleTable) setupTableHeaders() {
	for i, header := range []string{"Key", "Value"} {
		cell := tview.NewTableCell(header).
			SetTextColor(theme.Colors.HeaderText).
			SetAlign(tview.AlignLeft).
			SetSelectable(false).
			SetExpansion(1)
		bt.SetCell(0, i, cell)
	}
}
