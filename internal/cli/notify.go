package cli

import "fmt"

// ConsoleNotifier prints session toasts to stdout. It satisfies
// session.Notifier.
type ConsoleNotifier struct{}

func (ConsoleNotifier) Success(title, detail string) {
	printlnFn(fmt.Sprintf("[ok] %s: %s", title, detail))
}

func (ConsoleNotifier) Failure(title, detail string) {
	printlnFn(fmt.Sprintf("[error] %s: %s", title, detail))
}
