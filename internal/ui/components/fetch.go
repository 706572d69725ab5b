package components

import (
	"context"
	"fmt"
	"time"

	"bundletui/internal/config"
	"bundletui/internal/logger"
	"bundletui/internal/ui/models"
	"bundletui/pkg/api"
)

// SearchSnapshot pairs committed criteria with the generation token that
// committed them. The token decides whether the fetch result is still
// current when it comes back.
type SearchSnapshot struct {
	Generation uint64
	Criteria   models.SearchCriteria
}

// fetchBundles runs the remote lookup for one committed criteria set on a
// goroutine and applies the result on the event loop. A result is dropped
// when its generation no longer matches the state's: a later commit has
// superseded it and its own fetch will render instead.
func (a *App) fetchBundles(generation uint64, criteria models.SearchCriteria) {
	a.header.ShowLoading("Loading message bundles")

	go func() {
		rows := a.lookupRows(criteria)

		a.QueueUpdateDraw(func() {
			if generation != a.state.Generation() {
				// Stale fetch, a newer commit owns the table now.
				return
			}

			a.bundleTable.SetRows(rows)
			a.header.StopLoading()
			a.header.ShowSuccess(fmt.Sprintf("Loaded %d messages", len(rows)))
		})
	}()
}

// lookupRows issues the remote lookup and refines the result: word
// filtering, then locale-aware key ordering. Remote failure is logged and
// collapses to an empty row set; the table shows it exactly like a search
// with no matches.
func (a *App) lookupRows(criteria models.SearchCriteria) []api.BundleEntry {
	uiLogger := logger.GetPackageLogger("ui")

	locale := criteria.Locale
	if locale == "" {
		locale = a.config.DefaultLocale
		if locale == "" {
			locale = config.DefaultLocale
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	entries, err := a.client.FindEffectiveMessageBundles(ctx, api.BundleQuery{
		Realm:     a.client.Realm(),
		Theme:     criteria.Theme,
		ThemeType: criteria.ThemeType,
		Locale:    locale,
		Source:    true,
	})
	if err != nil {
		uiLogger.Error("Message bundle lookup failed: %v", err)

		return nil
	}

	rows := models.FilterRowsByWords(entries, criteria.HasWords)
	models.SortRowsByKey(rows, a.collator)

	return rows
}
