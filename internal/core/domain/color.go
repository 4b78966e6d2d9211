package domain

import (
	"fmt"
	"strings"
)

// Color is the mark given to one letter of a guess.
// The numeric order Unknown < Black < Yellow < Green is the order used
// when keeping the best colour seen for a letter.
type Color uint8

const (
	// ColorUnknown means no information; only used for keyboard display.
	ColorUnknown Color = iota

	// ColorBlack means no unaccounted occurrence of the letter remains.
	ColorBlack

	// ColorYellow means the letter is present but not at this position.
	ColorYellow

	// ColorGreen means the letter is at this position.
	ColorGreen
)

// Symbol returns the one-letter code used in colour strings.
func (c Color) Symbol() byte {
	switch c {
	case ColorGreen:
		return 'G'
	case ColorYellow:
		return 'Y'
	case ColorBlack:
		return 'B'
	default:
		return 'X'
	}
}

// String returns the colour name.
func (c Color) String() string {
	switch c {
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlack:
		return "black"
	default:
		return "unknown"
	}
}

// Feedback is the colour pattern for one guess.
type Feedback [WordLength]Color

// Solved is the all-green pattern.
var Solved = Feedback{ColorGreen, ColorGreen, ColorGreen, ColorGreen, ColorGreen}

// ParseFeedback parses a colour string such as "GYBBG".
// Lowercase symbols are accepted.
func ParseFeedback(s string) (Feedback, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != WordLength {
		return Feedback{}, fmt.Errorf("%w: %q must be %d symbols", ErrMalformedFeedback, s, WordLength)
	}

	var fb Feedback
	for i := range WordLength {
		switch s[i] {
		case 'G':
			fb[i] = ColorGreen
		case 'Y':
			fb[i] = ColorYellow
		case 'B':
			fb[i] = ColorBlack
		default:
			return Feedback{}, fmt.Errorf("%w: %q contains %q, want G, Y or B", ErrMalformedFeedback, s, s[i])
		}
	}
	return fb, nil
}

// String returns the colour string, e.g. "GYBBG".
func (f Feedback) String() string {
	b := make([]byte, WordLength)
	for i, c := range f {
		b[i] = c.Symbol()
	}
	return string(b)
}

// IsSolved reports whether every position is green.
func (f Feedback) IsSolved() bool {
	return f == Solved
}

// FeedbackCodes is the number of distinct Code values.
const FeedbackCodes = 243 // 3^5

// Code packs the pattern into a base-3 number (black=0, yellow=1, green=2).
// Unknown is treated as black.
func (f Feedback) Code() uint8 {
	var code uint8
	for _, c := range f {
		var d uint8
		switch c {
		case ColorYellow:
			d = 1
		case ColorGreen:
			d = 2
		}
		code = code*3 + d
	}
	return code
}

// Guess pairs a guessed word with the feedback it received.
type Guess struct {
	Word     Word
	Feedback Feedback
}

// String renders the guess as "WORD GYBBG".
func (g Guess) String() string {
	return g.Word.String() + " " + g.Feedback.String()
}

// ParseGuess parses a guess written as "WORD=COLORS" or "WORD COLORS",
// e.g. "CRANE=GYBBY".
func ParseGuess(s string) (Guess, error) {
	word, colors, ok := strings.Cut(strings.TrimSpace(s), "=")
	if !ok {
		fields := strings.Fields(s)
		if len(fields) != 2 {
			return Guess{}, fmt.Errorf("%w: %q, want WORD=COLORS", ErrMalformedFeedback, s)
		}
		word, colors = fields[0], fields[1]
	}

	w, err := ParseWord(word)
	if err != nil {
		return Guess{}, err
	}
	fb, err := ParseFeedback(colors)
	if err != nil {
		return Guess{}, err
	}
	return Guess{Word: w, Feedback: fb}, nil
}
