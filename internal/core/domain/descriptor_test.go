package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guess(t *testing.T, word, colors string) Guess {
	t.Helper()
	fb, err := ParseFeedback(colors)
	require.NoError(t, err)
	return Guess{Word: MustParseWord(word), Feedback: fb}
}

func TestNewDescriptor(t *testing.T) {
	answers := mustWords(t, "CRANE", "CRONE", "TRACE")
	d := NewDescriptor(answers)

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, answers, d.Remaining())
	assert.Equal(t, NewConstraints(), d.Constraints())
	assert.Equal(t, ColorUnknown, d.LetterStatus(letter('C')))

	// The descriptor keeps its own copy of the corpus.
	answers[0] = MustParseWord("SLATE")
	assert.True(t, d.Contains(MustParseWord("CRANE")))
}

func TestDescriptor_Apply(t *testing.T) {
	d := NewDescriptor(mustWords(t, "CRANE", "CRONE", "TRACE"))

	d.Apply(guess(t, "CRANE", "YGGBG"))

	assert.Equal(t, []string{"TRACE"}, Strings(d.Remaining()))
	assert.True(t, d.Contains(MustParseWord("TRACE")))
	assert.False(t, d.Contains(MustParseWord("CRANE")))
	assert.Equal(t, ColorYellow, d.LetterStatus(letter('C')))
	assert.Equal(t, ColorGreen, d.LetterStatus(letter('R')))
	assert.Equal(t, ColorBlack, d.LetterStatus(letter('N')))
	assert.Equal(t, ColorUnknown, d.LetterStatus(letter('T')))
}

func TestDescriptor_UpdateLeavesRemaining(t *testing.T) {
	d := NewDescriptor(mustWords(t, "CRANE", "CRONE", "TRACE"))

	d.Update(guess(t, "CRANE", "YGGBG"))
	assert.Equal(t, 3, d.Len())

	d.Recalculate()
	assert.Equal(t, 1, d.Len())
}

func TestDescriptor_LetterStatusKeepsBest(t *testing.T) {
	d := NewDescriptor(mustWords(t, sampleWords...))

	d.Update(guess(t, "EERIE", "YBYBG"))
	assert.Equal(t, ColorGreen, d.LetterStatus(letter('E')))

	// A later black for E must not downgrade it.
	d.Update(guess(t, "SPEED", "BBBBB"))
	assert.Equal(t, ColorGreen, d.LetterStatus(letter('E')))
}

func TestDescriptor_RemainingOnlyShrinks(t *testing.T) {
	words := mustWords(t, sampleWords...)
	answer := MustParseWord("NEVER")
	d := NewDescriptor(words)

	prev := d.Len()
	for _, g := range []string{"ARISE", "STEEL", "LEVEL", "NEVER"} {
		w := MustParseWord(g)
		d.Apply(Guess{Word: w, Feedback: Evaluate(w, answer)})
		assert.LessOrEqual(t, d.Len(), prev)
		assert.True(t, d.Contains(answer))
		prev = d.Len()
	}
	assert.Equal(t, []string{"NEVER"}, Strings(d.Remaining()))
}

func TestDescriptor_CloneIsIndependent(t *testing.T) {
	d := NewDescriptor(mustWords(t, "CRANE", "CRONE", "TRACE"))
	c := d.Clone()

	c.Apply(guess(t, "CRANE", "YGGBG"))

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, NewConstraints(), d.Constraints())
	assert.Equal(t, ColorUnknown, d.LetterStatus(letter('C')))
}

func TestDescriptor_View(t *testing.T) {
	d := NewDescriptor(mustWords(t, "CRANE", "CRONE", "TRACE"))
	d.Apply(guess(t, "CRANE", "YGGBG"))

	v := d.View()

	assert.Equal(t, "R", v.Positions[1])
	assert.Len(t, v.Positions[0], AlphabetSize-2)
	assert.Equal(t, "["+v.Positions[0]+"][R][A]["+v.Positions[3]+"][E]", v.Pattern)
	assert.Equal(t, map[string]int{"A": 1, "C": 1, "E": 1, "R": 1}, v.MinCount)
	assert.Equal(t, 0, v.MaxCount["N"])
	assert.Equal(t, 2, v.MaxCount["C"])
	assert.Equal(t, 1, v.MaxCount["Z"])
	assert.Equal(t, ColorGreen, v.LetterStatus[letter('A')])
	assert.Equal(t, []string{"TRACE"}, v.Remaining)
}

func TestDescriptor_ViewFresh(t *testing.T) {
	v := NewDescriptor(nil).View()

	assert.Empty(t, v.MinCount)
	assert.Empty(t, v.MaxCount)
	assert.Empty(t, v.Remaining)
	for _, p := range v.Positions {
		assert.Len(t, p, AlphabetSize)
	}
}
