package domain

import (
	"slices"
	"strings"
)

// Descriptor is everything known about the secret answer: the constraints
// accumulated from feedback, the answers still consistent with them, and the
// best colour seen for each letter (display only).
//
// A Descriptor is owned by one session. Use Clone for scratch copies.
type Descriptor struct {
	constraints Constraints
	status      [AlphabetSize]Color
	remaining   []Word
}

// NewDescriptor returns a fresh descriptor with every answer still possible.
func NewDescriptor(answers []Word) *Descriptor {
	return &Descriptor{
		constraints: NewConstraints(),
		remaining:   slices.Clone(answers),
	}
}

// Clone returns an independent copy. The remaining list is shared because
// Recalculate always builds a new slice rather than editing in place.
func (d *Descriptor) Clone() *Descriptor {
	c := *d
	return &c
}

// Constraints returns a copy of the current constraints.
func (d *Descriptor) Constraints() Constraints {
	return d.constraints
}

// Update applies one guess to the constraints and letter status.
// It does not touch the remaining words; call Recalculate for that.
func (d *Descriptor) Update(g Guess) {
	for i := range WordLength {
		l := g.Word.letters[i]
		if g.Feedback[i] > d.status[l] {
			d.status[l] = g.Feedback[i]
		}
	}
	d.constraints.Apply(g.Word, g.Feedback)
}

// Recalculate narrows the remaining words to those consistent with the
// constraints. The list only ever shrinks.
func (d *Descriptor) Recalculate() {
	d.remaining = d.constraints.Filter(d.remaining)
}

// Apply is Update followed by Recalculate.
func (d *Descriptor) Apply(g Guess) {
	d.Update(g)
	d.Recalculate()
}

// Remaining returns the candidate answers in corpus order.
// The returned slice must not be modified.
func (d *Descriptor) Remaining() []Word {
	return d.remaining
}

// Len returns the number of candidate answers.
func (d *Descriptor) Len() int {
	return len(d.remaining)
}

// Contains reports whether w is still a candidate answer.
func (d *Descriptor) Contains(w Word) bool {
	for i := range d.remaining {
		if d.remaining[i].text == w.text {
			return true
		}
	}
	return false
}

// LetterStatus returns the best colour seen for letter l.
func (d *Descriptor) LetterStatus(l uint8) Color {
	return d.status[l]
}

// DescriptorView is a read-only snapshot for presentation.
type DescriptorView struct {
	// Pattern is the position sets as a regular expression, e.g. "[AB][R]...".
	Pattern string `json:"pattern"`

	// Positions lists the letters still possible at each position.
	Positions [WordLength]string `json:"positions"`

	// MinCount holds the letters known to be present and their lower bounds.
	MinCount map[string]int `json:"min_count"`

	// MaxCount holds the letters whose upper bound is below WordLength.
	MaxCount map[string]int `json:"max_count"`

	// LetterStatus is the best colour seen for each letter A-Z.
	LetterStatus [AlphabetSize]Color `json:"-"`

	// Remaining lists the candidate answers.
	Remaining []string `json:"remaining"`
}

// View returns a snapshot of the descriptor for display.
func (d *Descriptor) View() DescriptorView {
	v := DescriptorView{
		MinCount:     make(map[string]int),
		MaxCount:     make(map[string]int),
		LetterStatus: d.status,
		Remaining:    Strings(d.remaining),
	}

	var b strings.Builder
	for i := range WordLength {
		set := d.constraints.positions[i].String()
		v.Positions[i] = set
		b.WriteByte('[')
		b.WriteString(set)
		b.WriteByte(']')
	}
	v.Pattern = b.String()

	for l := range uint8(AlphabetSize) {
		name := string(rune('A' + l))
		if m := d.constraints.minCount[l]; m > 0 {
			v.MinCount[name] = int(m)
		}
		if m := d.constraints.maxCount[l]; m < WordLength {
			v.MaxCount[name] = int(m)
		}
	}

	return v
}
