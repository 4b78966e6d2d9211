// Package logger writes the --verbose trace of the wordle CLI to stderr.
//
// Lines are tagged by channel. [SOLVER] lines follow the candidate set and
// the recommender's scoring, [TIME] lines report how long a step took inside
// the current Section, and [DEBUG], [INFO] and [WARN] carry everything else.
// Nothing is written unless verbose mode is on.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Channel tags a verbose line.
type Channel string

const (
	ChannelDebug  Channel = "DEBUG"
	ChannelInfo   Channel = "INFO"
	ChannelWarn   Channel = "WARN"
	ChannelSolver Channel = "SOLVER"
	ChannelTime   Channel = "TIME"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	section string
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Logf writes one line on the given channel.
func Logf(ch Channel, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, "[%s] %s\n", ch, fmt.Sprintf(format, args...))
}

// Debug logs on the DEBUG channel.
func Debug(format string, args ...any) { Logf(ChannelDebug, format, args...) }

// Info logs on the INFO channel.
func Info(format string, args ...any) { Logf(ChannelInfo, format, args...) }

// Warn logs on the WARN channel.
func Warn(format string, args ...any) { Logf(ChannelWarn, format, args...) }

// Solver logs how the candidate set or the recommender's scoring changed.
func Solver(format string, args ...any) { Logf(ChannelSolver, format, args...) }

// Section starts a named block of work. The header is printed when verbose,
// and later [TIME] lines name the section they were measured in.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	section = name
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// CurrentSection returns the name passed to the last Section call.
func CurrentSection() string {
	mu.RLock()
	defer mu.RUnlock()
	return section
}

// Timer starts timing label and returns the func that stops it.
// The stop func logs the elapsed time, rounded to the millisecond.
//
//	defer logger.Timer("score guesses")()
func Timer(label string) func() {
	start := time.Now()
	return func() { elapsed(label, time.Since(start)) }
}

func elapsed(label string, d time.Duration) {
	in := CurrentSection()
	d = d.Round(time.Millisecond)
	if in == "" {
		Logf(ChannelTime, "%s: %s", label, d)
		return
	}
	Logf(ChannelTime, "%s: %s (%s)", label, d, in)
}
