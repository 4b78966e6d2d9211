package driven

// ProgressReporter receives progress of long-running work such as a guess
// search or an auto-play run. Implementations must be safe for concurrent Add.
type ProgressReporter interface {
	// Start begins a unit of work with total steps.
	Start(total int, description string)

	// Add marks n more steps done.
	Add(n int)

	// Finish ends the current unit of work.
	Finish()
}
