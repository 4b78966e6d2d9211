package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/custodia-labs/wordle-cli/internal/core/ports/driven"
)

// Verify interface compliance.
var (
	_ driven.ProgressReporter = (*Bar)(nil)
	_ driven.ProgressReporter = (*Log)(nil)
	_ driven.ProgressReporter = Nop{}
)

// barThrottle limits how often the bar is redrawn.
const barThrottle = 65 * time.Millisecond

// Bar draws a progress bar on a terminal. Each Start replaces the bar.
type Bar struct {
	mu  sync.Mutex
	out io.Writer
	bar *progressbar.ProgressBar
}

// NewBar creates a bar reporter writing to out.
func NewBar(out io.Writer) *Bar {
	return &Bar{out: out}
}

// Start begins a new bar.
func (b *Bar) Start(total int, description string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(barThrottle),
		progressbar.OptionClearOnFinish(),
	)
}

// Add advances the current bar.
func (b *Bar) Add(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.bar != nil {
		_ = b.bar.Add(n)
	}
}

// Finish completes and clears the current bar.
func (b *Bar) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.bar != nil {
		_ = b.bar.Finish()
		b.bar = nil
	}
}

// Nop discards progress.
type Nop struct{}

// Start does nothing.
func (Nop) Start(int, string) {}

// Add does nothing.
func (Nop) Add(int) {}

// Finish does nothing.
func (Nop) Finish() {}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ForTerminal picks a bar when enabled and out is a terminal, otherwise a
// throttled log reporter.
func ForTerminal(out *os.File, enabled bool) driven.ProgressReporter {
	if enabled && IsTerminal(out) {
		return NewBar(out)
	}
	return NewLog(DefaultLogInterval)
}
