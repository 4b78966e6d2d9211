package domain

import (
	"fmt"
	"strings"
)

const (
	// WordLength is the number of letters in every word.
	WordLength = 5

	// AlphabetSize is the number of recognised letters (A-Z).
	AlphabetSize = 26
)

// LetterSet is a set of letters stored as a 26-bit mask, bit 0 is 'A'.
type LetterSet uint32

// FullAlphabet contains every letter A-Z.
const FullAlphabet LetterSet = 1<<AlphabetSize - 1

// Has reports whether the set contains letter l (0-25).
func (s LetterSet) Has(l uint8) bool {
	return s&(1<<l) != 0
}

// Without returns the set with letter l removed.
func (s LetterSet) Without(l uint8) LetterSet {
	return s &^ (1 << l)
}

// Only returns the set containing just letter l.
func Only(l uint8) LetterSet {
	return 1 << l
}

// String returns the members in alphabetical order, e.g. "ABZ".
func (s LetterSet) String() string {
	var b strings.Builder
	for l := range uint8(AlphabetSize) {
		if s.Has(l) {
			b.WriteByte('A' + l)
		}
	}
	return b.String()
}

// Word is an immutable five-letter word over A-Z with its letter counts
// computed once at construction.
type Word struct {
	text    string
	letters [WordLength]uint8
	counts  [AlphabetSize]uint8
}

// ParseWord validates s as a guess and returns the Word.
// Lowercase input is accepted and normalised to uppercase.
func ParseWord(s string) (Word, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != WordLength {
		return Word{}, fmt.Errorf("%w: %q must be %d letters", ErrMalformedGuess, s, WordLength)
	}

	var w Word
	w.text = s
	for i := range WordLength {
		c := s[i]
		if c < 'A' || c > 'Z' {
			return Word{}, fmt.Errorf("%w: %q contains %q", ErrMalformedGuess, s, c)
		}
		w.letters[i] = c - 'A'
		w.counts[c-'A']++
	}
	return w, nil
}

// MustParseWord is like ParseWord but panics on error.
// Intended for fixed word lists and tests.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// ParseWords parses every string, stopping at the first malformed word.
func ParseWords(ss []string) ([]Word, error) {
	words := make([]Word, 0, len(ss))
	for _, s := range ss {
		w, err := ParseWord(s)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}

// String returns the uppercase word.
func (w Word) String() string {
	return w.text
}

// IsZero reports whether w is the zero Word.
func (w Word) IsZero() bool {
	return w.text == ""
}

// Letter returns the letter index (0-25) at position i.
func (w Word) Letter(i int) uint8 {
	return w.letters[i]
}

// Count returns how many times letter l (0-25) appears in the word.
func (w Word) Count(l uint8) uint8 {
	return w.counts[l]
}

// Strings converts words back to their text form.
func Strings(words []Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.text
	}
	return out
}
