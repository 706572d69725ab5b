package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"bundletui/internal/tools/queuedrawcheck"
)

func main() {
	singlechecker.Main(queuedrawcheck.Analyzer)
}
