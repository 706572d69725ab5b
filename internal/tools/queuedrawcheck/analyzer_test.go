package queuedrawcheck_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"bundletui/internal/tools/queuedrawcheck"
)

func TestAnalyzer(t *testing.T) {
	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, queuedrawcheck.Analyzer, "a")
}
