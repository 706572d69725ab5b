package components

import (
	"strings"
	"testing"

	"bundletui/pkg/api"
)

func TestBundleTable_PreSearchPlaceholder(t *testing.T) {
	bt := NewBundleTable(nil)

	text := bt.GetCell(0, 0).Text
	if !strings.Contains(text, "choose a theme") {
		t.Errorf("pre-search table should show instructions, got %q", text)
	}
}

func TestBundleTable_EmptySearchResult(t *testing.T) {
	bt := NewBundleTable(nil)
	bt.SetSearched(true)
	bt.SetRows(nil)

	if got := bt.GetCell(0, 0).Text; got != "Key" {
		t.Errorf("searched table should show headers, got %q", got)
	}

	if got := bt.GetCell(1, 0).Text; !strings.Contains(got, "No messages match") {
		t.Errorf("empty search should show the no-match state, got %q", got)
	}
}

func TestBundleTable_RowsReplacedPerFetch(t *testing.T) {
	bt := NewBundleTable(nil)
	bt.SetSearched(true)

	bt.SetRows([]api.BundleEntry{
		{Key: "a.b", Value: "Hello"},
		{Key: "c.d", Value: "World"},
	})

	if bt.GetRowCount() != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", bt.GetRowCount())
	}

	if bt.GetCell(1, 0).Text != "a.b" || bt.GetCell(1, 1).Text != "Hello" {
		t.Errorf("unexpected first row: %q / %q", bt.GetCell(1, 0).Text, bt.GetCell(1, 1).Text)
	}

	// A new fetch discards the old rows entirely.
	bt.SetRows([]api.BundleEntry{{Key: "x.y", Value: "Z"}})

	if bt.GetRowCount() != 2 {
		t.Errorf("expected header plus 1 row after refetch, got %d", bt.GetRowCount())
	}

	if bt.GetCell(1, 0).Text != "x.y" {
		t.Errorf("expected new row, got %q", bt.GetCell(1, 0).Text)
	}
}

func TestBundleTable_SearchedIsSticky(t *testing.T) {
	bt := NewBundleTable(nil)
	bt.SetSearched(true)

	// Setting it true again must not reset anything.
	bt.SetRows([]api.BundleEntry{{Key: "k", Value: "v"}})
	bt.SetSearched(true)

	if bt.GetCell(1, 0).Text != "k" {
		t.Errorf("re-setting searched must not clear rows, got %q", bt.GetCell(1, 0).Text)
	}
}

func TestBundleTable_SearchingTitle(t *testing.T) {
	bt := NewBundleTable(nil)

	bt.SetSearching(true)

	if !strings.Contains(bt.GetTitle(), "filtered") {
		t.Errorf("searching table should indicate filtering, got %q", bt.GetTitle())
	}

	bt.SetSearching(false)

	if strings.Contains(bt.GetTitle(), "filtered") {
		t.Errorf("indicator should clear, got %q", bt.GetTitle())
	}
}
