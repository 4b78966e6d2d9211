// Package domain defines the core entities and constraint engine for the
// word-guessing solver.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Word: A validated five-letter word with precomputed letter counts
//   - Feedback: The Green/Yellow/Black pattern for one guess
//   - Constraints: Fixed-size position sets and occurrence bounds
//   - Descriptor: Constraints plus the remaining candidate answers
//   - Game: One solving session and its guess history
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
