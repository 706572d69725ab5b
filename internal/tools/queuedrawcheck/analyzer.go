package queuedrawcheck

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
)

// Analyzer reports re-entrant tview update queue calls. Queueing an update
// from inside an update callback deadlocks the tview event loop, which is
// easy to do by accident when a fetch goroutine's apply step calls shared
// helpers that queue their own draws.
var Analyzer = &analysis.Analyzer{
	Name: "queuedrawcheck",
	Doc:  "reports QueueUpdateDraw/QueueUpdate calls inside update callbacks",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			outerCall, ok := n.(*ast.CallExpr)
			if !ok || !isQueueCall(outerCall) || len(outerCall.Args) == 0 {
				return true
			}

			fnLit, ok := outerCall.Args[0].(*ast.FuncLit)
			if !ok {
				return true
			}

			inspectCallback(pass, fnLit)

			return true
		})
	}

	return nil, nil
}

// inspectCallback walks one update callback body and reports every queue
// call reachable without crossing a function literal boundary. Nested
// literals (goroutines declared inside the callback) execute in separate
// contexts and are analyzed at their own call sites.
func inspectCallback(pass *analysis.Pass, fnLit *ast.FuncLit) {
	ast.Inspect(fnLit.Body, func(inner ast.Node) bool {
		if innerLit, ok := inner.(*ast.FuncLit); ok && innerLit != fnLit {
			return false
		}

		innerCall, ok := inner.(*ast.CallExpr)
		if !ok {
			return true
		}

		if isQueueCall(innerCall) {
			pass.Reportf(innerCall.Pos(),
				"nested %s inside an update callback can deadlock tview", queueCallName(innerCall))

			return false
		}

		return true
	})
}

func isQueueCall(call *ast.CallExpr) bool {
	name := queueCallName(call)

	return name == "QueueUpdateDraw" || name == "QueueUpdate"
}

func queueCallName(call *ast.CallExpr) string {
	selector, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || selector.Sel == nil {
		return ""
	}

	return selector.Sel.Name
}
