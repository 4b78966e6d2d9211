package progress

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/wordle-cli/internal/logger"
)

// DefaultLogInterval is how often Log reports while work is running.
const DefaultLogInterval = time.Second

// Log writes progress to the verbose logger, at most once per interval.
type Log struct {
	interval time.Duration

	mu          sync.Mutex
	description string
	total       int
	stop        func()
	sometimes   *rate.Sometimes

	done atomic.Int64
}

// NewLog creates a log reporter.
func NewLog(interval time.Duration) *Log {
	return &Log{interval: interval}
}

// Start logs the beginning of a unit of work.
func (l *Log) Start(total int, description string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.description = description
	l.total = total
	l.stop = logger.Timer(description)
	l.sometimes = &rate.Sometimes{Interval: l.interval}
	l.done.Store(0)
	logger.Info("%s: %d steps", description, total)
}

// Add records progress and logs it when the interval allows.
func (l *Log) Add(n int) {
	done := l.done.Add(int64(n))

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sometimes == nil {
		return
	}
	l.sometimes.Do(func() {
		logger.Debug("%s: %d/%d", l.description, done, l.total)
	})
}

// Finish logs the elapsed time.
func (l *Log) Finish() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sometimes == nil {
		return
	}
	l.stop()
	l.sometimes = nil
}

// Done returns the steps recorded since the last Start.
func (l *Log) Done() int {
	return int(l.done.Load())
}
