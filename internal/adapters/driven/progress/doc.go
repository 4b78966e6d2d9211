// Package progress implements driven.ProgressReporter for terminals, logs and
// silent runs.
package progress
