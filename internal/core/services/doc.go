// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The Recommender is the expensive part: it scores every guess against
// every remaining answer on a bounded pool of goroutines.
package services
