package a

type app struct{}

func (a *app) QueueUpdateDraw(f func()) {}

func (a *app) QueueUpdate(f func()) {}

func nestedDraw(a *app) {
	a.QueueUpdateDraw(func() {
		a.QueueUpdateDraw(func() {}) // want `nested QueueUpdateDraw inside an update callback can deadlock tview`
	})
}

func nestedUpdate(a *app) {
	a.QueueUpdateDraw(func() {
		a.QueueUpdate(func() {}) // want `nested QueueUpdate inside an update callback can deadlock tview`
	})
}

func goroutineInsideCallbackIsFine(a *app) {
	a.QueueUpdateDraw(func() {
		go func() {
			a.QueueUpdateDraw(func() {})
		}()
	})
}

func siblingCallsAreFine(a *app) {
	a.QueueUpdateDraw(func() {})
	a.QueueUpdateDraw(func() {})
}
