package components

import (
	"strings"

	"github.com/rivo/tview"

	"bundletui/internal/locales"
	"bundletui/internal/ui/models"
	"bundletui/internal/ui/theme"
)

// unsetOptionLabel is the dropdown entry representing "no selection".
const unsetOptionLabel = "-"

// FilterPanel is the filter editing form: theme, theme type and locale
// dropdowns plus the free-text word field. Every edit lands in the
// FilterForm immediately; nothing becomes an active filter until Search
// commits it.
type FilterPanel struct {
	*tview.Form
	app *App

	themeOptions []string
	typeOptions  []string
	localeCodes  []string
}

// NewFilterPanel creates the filter form wired to the app's search state.
func NewFilterPanel(app *App) *FilterPanel {
	p := &FilterPanel{
		Form: newStandardForm(),
		app:  app,
	}

	p.SetBorder(true)
	p.SetTitle(" Search Filters ")
	p.SetTitleColor(theme.Colors.Title)
	p.SetBorderColor(theme.Colors.Border)
	p.SetCancelFunc(app.closeFilterPanel)

	p.themeOptions = withUnsetOption(app.themeNames)
	p.typeOptions = withUnsetOption(app.themeTypes)

	p.localeCodes = append([]string{""}, app.localeList...)
	localeLabels := make([]string, len(p.localeCodes))
	localeLabels[0] = unsetOptionLabel

	for i, code := range app.localeList {
		localeLabels[i+1] = locales.Label(code)
	}

	p.AddDropDown("Theme", p.themeOptions, 0, func(option string, index int) {
		app.state.Form().SetTheme(optionValue(p.themeOptions, index))
		p.updateButtons()
	})
	p.AddDropDown("Theme type", p.typeOptions, 0, func(option string, index int) {
		app.state.Form().SetThemeType(optionValue(p.typeOptions, index))
		p.updateButtons()
	})
	p.AddDropDown("Locale", localeLabels, 0, func(option string, index int) {
		app.state.Form().SetLocale(optionValue(p.localeCodes, index))
		p.updateButtons()
	})
	p.AddInputField("Has words", "", 30, nil, func(text string) {
		app.state.Form().SetWords(models.ParseWords(text))
		p.updateButtons()
	})

	p.AddButton("Search", app.submitSearch)
	p.AddButton("Reset", app.resetSearch)
	p.AddButton("Close", app.closeFilterPanel)

	p.updateButtons()

	return p
}

// SyncFromForm aligns the widgets with the FilterForm's current values,
// used when the panel opens and after chip removals or resets.
func (p *FilterPanel) SyncFromForm() {
	values := p.app.state.Form().Values()

	if dd, ok := p.GetFormItem(0).(*tview.DropDown); ok {
		dd.SetCurrentOption(optionIndex(p.themeOptions, values.Theme))
	}

	if dd, ok := p.GetFormItem(1).(*tview.DropDown); ok {
		dd.SetCurrentOption(optionIndex(p.typeOptions, values.ThemeType))
	}

	if dd, ok := p.GetFormItem(2).(*tview.DropDown); ok {
		dd.SetCurrentOption(optionIndex(p.localeCodes, values.Locale))
	}

	if input, ok := p.GetFormItem(3).(*tview.InputField); ok {
		input.SetText(strings.Join(values.HasWords, " "))
	}

	p.updateButtons()
}

// updateButtons enforces the button rules: Search needs a valid form,
// Reset needs a dirty one.
func (p *FilterPanel) updateButtons() {
	if p.GetButtonCount() < 2 {
		return
	}

	form := p.app.state.Form()
	p.GetButton(0).SetDisabled(!form.Valid())
	p.GetButton(1).SetDisabled(!form.Dirty())
}

// withUnsetOption prepends the "no selection" entry to a dropdown list.
func withUnsetOption(options []string) []string {
	return append([]string{unsetOptionLabel}, options...)
}

// optionValue maps a dropdown index back to the stored field value; the
// first entry is always the unset marker.
func optionValue(options []string, index int) string {
	if index <= 0 || index >= len(options) {
		return ""
	}

	return options[index]
}

// optionIndex maps a stored field value to its dropdown index, falling
// back to the unset entry when the value is absent.
func optionIndex(options []string, value string) int {
	if value == "" {
		return 0
	}

	for i, option := range options {
		if option == value {
			return i
		}
	}

	return 0
}
