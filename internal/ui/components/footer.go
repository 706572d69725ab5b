package components

import (
	"fmt"

	"github.com/rivo/tview"
)

// Footer encapsulates the application footer
type Footer struct {
	*tview.TextView
	activeFilterCount int
	baseText          string
}

var _ FooterComponent = (*Footer)(nil)

// NewFooter creates a new application footer with key bindings
func NewFooter() *Footer {
	footer := tview.NewTextView()
	footer.SetTextAlign(tview.AlignCenter)
	footer.SetDynamicColors(true)

	baseText := "[yellow]F:[white]Filters  [yellow]R:[white]Refresh  [yellow]C:[white]Chips  [yellow]?:[white]Help  [yellow]Q:[white]Quit"
	footer.SetText(baseText)

	return &Footer{
		TextView: footer,
		baseText: baseText,
	}
}

// UpdateKeybindings updates the footer text with custom key bindings
func (f *Footer) UpdateKeybindings(text string) {
	f.baseText = text
	f.updateDisplay()
}

// UpdateActiveFilterCount updates the active filter count display
func (f *Footer) UpdateActiveFilterCount(count int) {
	f.activeFilterCount = count
	f.updateDisplay()
}

// updateDisplay refreshes the footer text with current information
func (f *Footer) updateDisplay() {
	text := f.baseText
	if f.activeFilterCount > 0 {
		text = fmt.Sprintf("%s  [green]Filters:[white]%d", text, f.activeFilterCount)
	}
	f.SetText(text)
}
