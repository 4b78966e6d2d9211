package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleWords has plenty of repeated letters so duplicate handling gets exercised.
var sampleWords = []string{
	"CRANE", "TRACE", "CRONE", "SPEED", "ERASE", "THERE", "EERIE", "ABBEY",
	"KEBAB", "LLAMA", "HELLO", "SKILL", "STEEL", "GEESE", "EMCEE", "MAMMA",
	"ARISE", "RAISE", "SLATE", "ROBOT", "FLOOR", "ADDED", "SASSY", "PUPPY",
	"QUEUE", "LEVEL", "EVERY", "NEVER", "ALLOY", "TOTEM",
}

func mustWords(t *testing.T, ss ...string) []Word {
	t.Helper()
	words, err := ParseWords(ss)
	require.NoError(t, err)
	return words
}

func letter(c byte) uint8 {
	return c - 'A'
}

func TestParseWord(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "uppercase", input: "CRANE", want: "CRANE"},
		{name: "lowercase is normalised", input: "crane", want: "CRANE"},
		{name: "mixed case", input: "CrAnE", want: "CRANE"},
		{name: "surrounding space trimmed", input: "  slate\n", want: "SLATE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ParseWord(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.String())
			assert.False(t, w.IsZero())
		})
	}
}

func TestParseWord_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "too short", input: "CRAN"},
		{name: "too long", input: "CRANES"},
		{name: "digit", input: "CR4NE"},
		{name: "punctuation", input: "CRAN-"},
		{name: "inner space", input: "CR NE"},
		{name: "non ascii", input: "CRANÉ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ParseWord(tt.input)
			assert.ErrorIs(t, err, ErrMalformedGuess)
			assert.True(t, w.IsZero())
		})
	}
}

func TestWord_LettersAndCounts(t *testing.T) {
	w := MustParseWord("SPEED")

	assert.Equal(t, letter('S'), w.Letter(0))
	assert.Equal(t, letter('D'), w.Letter(4))
	assert.Equal(t, uint8(2), w.Count(letter('E')))
	assert.Equal(t, uint8(1), w.Count(letter('P')))
	assert.Equal(t, uint8(0), w.Count(letter('Z')))
}

func TestMustParseWord_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseWord("nope") })
}

func TestParseWords(t *testing.T) {
	words, err := ParseWords([]string{"crane", "TRACE"})
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE", "TRACE"}, Strings(words))

	_, err = ParseWords([]string{"crane", "trace!"})
	assert.ErrorIs(t, err, ErrMalformedGuess)
}

func TestLetterSet(t *testing.T) {
	s := FullAlphabet
	assert.Len(t, s.String(), AlphabetSize)
	assert.True(t, s.Has(letter('Q')))

	s = s.Without(letter('Q'))
	assert.False(t, s.Has(letter('Q')))
	assert.Len(t, s.String(), AlphabetSize-1)

	only := Only(letter('E'))
	assert.Equal(t, "E", only.String())
	assert.Equal(t, "", only.Without(letter('E')).String())

	assert.Equal(t, "ABZ", (Only(letter('Z')) | Only(letter('A')) | Only(letter('B'))).String())
}
