package components

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"bundletui/internal/locales"
	"bundletui/internal/ui/models"
	"bundletui/internal/ui/theme"
)

// chip is one removable filter token: scalar filters yield one chip each,
// the word filter one chip per word.
type chip struct {
	field models.FilterField
	value string
	label string
}

// ChipsBar renders the active filters as a row of removable chips. Focus
// it, move with the arrow keys, and remove the highlighted chip with
// Enter or Delete; removal retriggers the search.
type ChipsBar struct {
	*tview.TextView
	app      *App
	chips    []chip
	selected int
	pendingG bool
}

// NewChipsBar creates the chips bar.
func NewChipsBar(app *App) *ChipsBar {
	cb := &ChipsBar{
		app: app,
	}

	cb.TextView = tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetWrap(false)

	cb.SetInputCapture(cb.handleKey)

	return cb
}

// Update rebuilds the chips from a freshly committed filter projection.
func (cb *ChipsBar) Update(active models.ActiveFilters) {
	cb.chips = buildChips(active)

	if cb.selected >= len(cb.chips) {
		cb.selected = len(cb.chips) - 1
	}

	if cb.selected < 0 {
		cb.selected = 0
	}

	cb.render()
}

// HasChips reports whether any chip is displayed.
func (cb *ChipsBar) HasChips() bool {
	return len(cb.chips) > 0
}

func (cb *ChipsBar) render() {
	cb.Clear()

	if len(cb.chips) == 0 {
		cb.Highlight()

		return
	}

	text := ""
	for i, c := range cb.chips {
		text += fmt.Sprintf(`["%d"][%s:%s] %s ✕ [-:-][""] `,
			i, theme.ColorToTag(theme.Colors.ChipText), theme.ColorToTag(theme.Colors.Chip), c.label)
	}

	cb.SetText(text)
	cb.Highlight(strconv.Itoa(cb.selected))
}

func (cb *ChipsBar) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if len(cb.chips) == 0 {
		return event
	}

	if handleVimTopBottomRune(event, &cb.pendingG,
		func() { cb.selectChip(0) },
		func() { cb.selectChip(len(cb.chips) - 1) }) {
		return nil
	}

	switch event.Key() {
	case tcell.KeyLeft:
		if cb.selected > 0 {
			cb.selected--
			cb.Highlight(strconv.Itoa(cb.selected))
		}

		return nil
	case tcell.KeyRight:
		if cb.selected < len(cb.chips)-1 {
			cb.selected++
			cb.Highlight(strconv.Itoa(cb.selected))
		}

		return nil
	case tcell.KeyEnter, tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		cb.removeSelected()

		return nil
	case tcell.KeyEsc, tcell.KeyTab:
		cb.app.SetFocus(cb.app.bundleTable)

		return nil
	}

	return event
}

func (cb *ChipsBar) selectChip(index int) {
	if index < 0 || index >= len(cb.chips) {
		return
	}

	cb.selected = index
	cb.Highlight(strconv.Itoa(cb.selected))
}

func (cb *ChipsBar) removeSelected() {
	if cb.selected < 0 || cb.selected >= len(cb.chips) {
		return
	}

	c := cb.chips[cb.selected]

	if c.field == models.FieldHasWords {
		cb.app.removeFilterValue(c.field, c.value)
	} else {
		cb.app.removeFilter(c.field)
	}

	if !cb.HasChips() {
		cb.app.SetFocus(cb.app.bundleTable)
	}
}

// buildChips flattens the projection into displayable chips. Locale chips
// show the locale's display name; everything else shows the raw value.
func buildChips(active models.ActiveFilters) []chip {
	var chips []chip

	for _, sel := range active {
		for _, value := range sel.Values {
			chips = append(chips, chip{
				field: sel.Field,
				value: value,
				label: chipLabel(sel.Field, value),
			})
		}
	}

	return chips
}

func chipLabel(field models.FilterField, value string) string {
	switch field {
	case models.FieldTheme:
		return "Theme: " + value
	case models.FieldThemeType:
		return "Type: " + value
	case models.FieldLocale:
		return "Locale: " + locales.DisplayName(value)
	case models.FieldHasWords:
		return "Word: " + value
	default:
		return value
	}
}
