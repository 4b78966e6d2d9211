package domain

import "time"

// MaxTurns is the number of guesses a player gets in the real puzzle.
// The solver keeps going past it but reports the game as a failure.
const MaxTurns = 6

// Mode identifies where a game's feedback comes from.
type Mode string

// Available game modes.
const (
	// ModePlay picks a random secret; feedback is computed.
	ModePlay Mode = "play"

	// ModeAssist has no secret; the player reports the colours from another board.
	ModeAssist Mode = "assist"

	// ModeAuto is a self-played game against a known secret.
	ModeAuto Mode = "auto"
)

// IsValid returns true if the mode is recognised.
func (m Mode) IsValid() bool {
	switch m {
	case ModePlay, ModeAssist, ModeAuto:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m Mode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m Mode) Description() string {
	switch m {
	case ModePlay:
		return "Play (random hidden word)"
	case ModeAssist:
		return "Assist (enter colours from another board)"
	case ModeAuto:
		return "Auto (solver plays itself)"
	default:
		return unknownDescription
	}
}

// Game is one solving session.
type Game struct {
	// ID uniquely identifies the game.
	ID string

	// Mode is where feedback comes from.
	Mode Mode

	// Descriptor holds what is known about the answer.
	Descriptor *Descriptor

	// Guesses is the history in order.
	Guesses []Guess

	// StartedAt is when the game began.
	StartedAt time.Time

	secret Word
}

// NewGame creates a game over the answer corpus. A zero secret means the
// answer is unknown (assist mode).
func NewGame(id string, mode Mode, answers []Word, secret Word) *Game {
	return &Game{
		ID:         id,
		Mode:       mode,
		Descriptor: NewDescriptor(answers),
		StartedAt:  time.Now(),
		secret:     secret,
	}
}

// Secret returns the answer if the game knows it.
func (g *Game) Secret() (Word, bool) {
	return g.secret, !g.secret.IsZero()
}

// Record appends a guess and narrows the candidates.
func (g *Game) Record(guess Guess) {
	g.Guesses = append(g.Guesses, guess)
	g.Descriptor.Apply(guess)
}

// Turns returns the number of guesses made.
func (g *Game) Turns() int {
	return len(g.Guesses)
}

// Solved reports whether the last guess was all green.
func (g *Game) Solved() bool {
	return len(g.Guesses) > 0 && g.Guesses[len(g.Guesses)-1].Feedback.IsSolved()
}

// Contradiction reports whether no candidate answer is consistent with the
// feedback so far. This only happens when reported colours were wrong.
func (g *Game) Contradiction() bool {
	return g.Descriptor.Len() == 0
}
