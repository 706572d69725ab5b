package components

import (
	"context"
	"time"

	"github.com/rivo/tview"
	"golang.org/x/text/collate"

	"bundletui/internal/config"
	"bundletui/internal/locales"
	"bundletui/internal/logger"
	"bundletui/internal/ui/models"
	"bundletui/internal/ui/theme"
	"bundletui/pkg/api"
)

// App is the main application component. It owns the search state and all
// widgets; every mutation of the shared state happens on the tview event
// loop, fetch results come back through QueueUpdateDraw.
type App struct {
	*tview.Application
	client *api.Client
	config config.Config

	state    *models.SearchState
	collator *collate.Collator

	pages       *tview.Pages
	header      *Header
	footer      *Footer
	filterPanel *FilterPanel
	chipsBar    *ChipsBar
	bundleTable *BundleTable
	helpModal   *HelpModal
	mainLayout  *tview.Flex

	themeNames []string
	themeTypes []string
	localeList []string

	lastFocus tview.Primitive
}

// NewApp creates a new application instance with all UI components.
func NewApp(client *api.Client, cfg *config.Config) *App {
	theme.ApplyToTview()

	app := &App{
		Application: tview.NewApplication(),
		client:      client,
		config:      *cfg,
		state:       models.NewSearchState(),
		collator:    models.NewKeyCollator(cfg.UILocale),
	}

	// Create UI components
	app.header = NewHeader()
	app.header.SetApp(app.Application)
	app.footer = NewFooter()
	app.bundleTable = NewBundleTable(app)
	app.chipsBar = NewChipsBar(app)
	app.helpModal = NewHelpModal()
	app.pages = tview.NewPages()

	// Load filter options up front. Failures leave the dropdowns with
	// configured defaults rather than crashing the UI.
	app.loadFilterOptions()

	app.filterPanel = NewFilterPanel(app)

	// Set up component connections
	app.setupComponentConnections()

	// Configure root layout
	app.mainLayout = app.createMainLayout()

	// Register keyboard handlers
	app.setupKeyboardHandlers()

	// Set the root and focus
	app.SetRoot(app.mainLayout, true)
	app.SetFocus(app.bundleTable)

	return app
}

// Run starts the application.
func (a *App) Run() error {
	return a.Application.Run()
}

// CurrentState exposes the search state for keyboard and chip handlers.
func (a *App) CurrentState() *models.SearchState {
	return a.state
}

// loadFilterOptions fetches the installed themes and the realm's locale
// settings that populate the filter dropdowns.
func (a *App) loadFilterOptions() {
	uiLogger := logger.GetPackageLogger("ui")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	themes, err := a.client.ListThemes(ctx)
	if err != nil {
		uiLogger.Error("Failed to list themes: %v", err)
		a.header.ShowError("Failed to load themes: " + err.Error())
	} else {
		a.themeNames = api.ThemeNames(themes)
		a.themeTypes = api.ThemeTypes(themes)
	}

	localeLists := [][]string{a.config.SupportedLocales, a.config.DefaultLocales}

	realm, err := a.client.GetRealmLocalization(ctx, a.client.Realm())
	if err != nil {
		uiLogger.Error("Failed to load realm locale settings: %v", err)
	} else {
		localeLists = append(localeLists, realm.SupportedLocales)
		if realm.DefaultLocale != "" {
			localeLists = append(localeLists, []string{realm.DefaultLocale})
		}
	}

	a.localeList = locales.Union(localeLists...)
}
