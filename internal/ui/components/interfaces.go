package components

import (
	"github.com/rivo/tview"

	"bundletui/internal/ui/models"
	"bundletui/pkg/api"
)

type HeaderComponent interface {
	tview.Primitive
	SetApp(*tview.Application)
	ShowLoading(string)
	StopLoading()
	IsLoading() bool
	ShowSuccess(string)
	ShowError(string)
	SetTitle(string)
}

type FooterComponent interface {
	tview.Primitive
	UpdateKeybindings(string)
	UpdateActiveFilterCount(int)
}

type ChipsComponent interface {
	tview.Primitive
	Update(models.ActiveFilters)
	HasChips() bool
}

type BundleTableComponent interface {
	tview.Primitive
	SetRows([]api.BundleEntry)
	SetSearched(bool)
	SetSearching(bool)
	Rows() []api.BundleEntry
}

var (
	_ ChipsComponent       = (*ChipsBar)(nil)
	_ BundleTableComponent = (*BundleTable)(nil)
)
