package notifysvc

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/meucampus/planner/core"
)

// consoleNotifier renders toast notifications on the terminal.
type consoleNotifier struct {
	out io.Writer
}

var _ core.Notifier = (*consoleNotifier)(nil)

func NewConsoleNotifier() core.Notifier {
	return &consoleNotifier{out: os.Stderr}
}

func (n consoleNotifier) Success(msg string) {
	_, _ = fmt.Fprintf(n.out, "✔ %s\n", msg)
}

func (n consoleNotifier) Error(msg string) {
	_, _ = fmt.Fprintf(n.out, "✘ %s\n", msg)
}

// RecorderNotifier keeps notifications in memory; for tests.
type RecorderNotifier struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

var _ core.Notifier = (*RecorderNotifier)(nil)

func NewRecorderNotifier() *RecorderNotifier {
	return new(RecorderNotifier)
}

func (n *RecorderNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Successes = append(n.Successes, msg)
}

func (n *RecorderNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Errors = append(n.Errors, msg)
}

func (n *RecorderNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Successes, n.Errors = nil, nil
}
