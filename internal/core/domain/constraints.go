package domain

// Bound is what a single guess reveals about how often a letter occurs
// in the answer.
type Bound struct {
	// Min is the fewest occurrences the answer can have.
	Min uint8

	// Max is the most occurrences the answer can have.
	// WordLength means the guess said nothing about an upper limit.
	Max uint8
}

// groupRank orders the occurrences of one letter: green, yellow, black, unknown.
func groupRank(c Color) int {
	switch c {
	case ColorGreen:
		return 0
	case ColorYellow:
		return 1
	case ColorBlack:
		return 2
	default:
		return 3
	}
}

// ObservedBounds derives per-letter occurrence bounds from one guess.
//
// The colours of each letter's occurrences are ordered green first. The i-th
// occurrence (0-indexed) being black caps the letter at i copies; being green
// or yellow means at least i+1 copies. Letters absent from the guess get
// Bound{0, WordLength}.
func ObservedBounds(guess Word, fb Feedback) [AlphabetSize]Bound {
	var bounds [AlphabetSize]Bound
	for l := range bounds {
		bounds[l] = Bound{Min: 0, Max: WordLength}
	}

	var done LetterSet
	for i := range WordLength {
		l := guess.letters[i]
		if done.Has(l) {
			continue
		}
		done |= Only(l)

		var marks [WordLength]Color
		n := 0
		for j := i; j < WordLength; j++ {
			if guess.letters[j] != l {
				continue
			}
			// insertion keeps marks sorted by groupRank
			k := n
			for k > 0 && groupRank(marks[k-1]) > groupRank(fb[j]) {
				marks[k] = marks[k-1]
				k--
			}
			marks[k] = fb[j]
			n++
		}

		for k, c := range marks[:n] {
			switch c {
			case ColorBlack:
				bounds[l].Max = min(bounds[l].Max, uint8(k))
			case ColorGreen, ColorYellow:
				bounds[l].Min = max(bounds[l].Min, uint8(k+1))
			}
		}
	}

	return bounds
}

// Constraints is the fixed-size part of the solver state: the letters still
// possible at each position and the occurrence bounds of every letter.
// It is a plain value; copying it copies everything.
type Constraints struct {
	positions [WordLength]LetterSet
	minCount  [AlphabetSize]uint8
	maxCount  [AlphabetSize]uint8
}

// NewConstraints returns constraints that admit every word.
func NewConstraints() Constraints {
	var c Constraints
	for i := range c.positions {
		c.positions[i] = FullAlphabet
	}
	for l := range c.maxCount {
		c.maxCount[l] = WordLength
	}
	return c
}

// Position returns the letters still possible at position i.
func (c *Constraints) Position(i int) LetterSet {
	return c.positions[i]
}

// MinCount returns the lower occurrence bound of letter l.
func (c *Constraints) MinCount(l uint8) uint8 {
	return c.minCount[l]
}

// MaxCount returns the upper occurrence bound of letter l.
func (c *Constraints) MaxCount(l uint8) uint8 {
	return c.maxCount[l]
}

// Apply tightens the constraints with one guess and its feedback.
// It never loosens a constraint.
func (c *Constraints) Apply(guess Word, fb Feedback) {
	bounds := ObservedBounds(guess, fb)
	for l := range AlphabetSize {
		c.minCount[l] = max(c.minCount[l], bounds[l].Min)
		c.maxCount[l] = min(c.maxCount[l], bounds[l].Max)
	}

	// Only WordLength slots exist, so no letter may be allowed more copies
	// than the slots left over by every other letter's minimum.
	sumMin := 0
	for _, m := range c.minCount {
		sumMin += int(m)
	}
	for l := range AlphabetSize {
		limit := max(WordLength-sumMin+int(c.minCount[l]), 0)
		if int(c.maxCount[l]) > limit {
			c.maxCount[l] = uint8(limit)
		}
	}

	for i := range WordLength {
		l := guess.letters[i]
		switch fb[i] {
		case ColorGreen:
			c.positions[i] = Only(l)
		case ColorYellow:
			c.positions[i] = c.positions[i].Without(l)
		case ColorBlack:
			// With a repeated letter a black says nothing about the other
			// positions; the count bounds cover it.
			if guess.counts[l] <= 1 {
				c.removeEverywhere(l)
			}
		}
	}

	for l := range uint8(AlphabetSize) {
		if c.maxCount[l] == 0 {
			c.removeEverywhere(l)
		}
	}
}

func (c *Constraints) removeEverywhere(l uint8) {
	for i := range c.positions {
		c.positions[i] = c.positions[i].Without(l)
	}
}

func (c *Constraints) meetsMin(w *Word) bool {
	for l, m := range c.minCount {
		if m != 0 && w.counts[l] < m {
			return false
		}
	}
	return true
}

func (c *Constraints) meetsMax(w *Word) bool {
	for _, l := range w.letters {
		if w.counts[l] > c.maxCount[l] {
			return false
		}
	}
	return true
}

func (c *Constraints) meetsPositions(w *Word) bool {
	for i, l := range w.letters {
		if !c.positions[i].Has(l) {
			return false
		}
	}
	return true
}

// Matches reports whether w satisfies the position sets and both count bounds.
func (c *Constraints) Matches(w Word) bool {
	return c.meetsPositions(&w) && c.meetsMax(&w) && c.meetsMin(&w)
}

// Filter returns the words that satisfy the constraints, in input order.
// The min-count, max-count and position passes run one after another, each
// narrowing the previous pass's output. words is not modified.
func (c *Constraints) Filter(words []Word) []Word {
	kept := make([]Word, 0, len(words))
	for i := range words {
		if c.meetsMin(&words[i]) {
			kept = append(kept, words[i])
		}
	}

	n := 0
	for i := range kept {
		if c.meetsMax(&kept[i]) {
			kept[n] = kept[i]
			n++
		}
	}
	kept = kept[:n]

	n = 0
	for i := range kept {
		if c.meetsPositions(&kept[i]) {
			kept[n] = kept[i]
			n++
		}
	}
	return kept[:n]
}

// Count returns how many words Filter would keep without allocating.
// Counting stops as soon as the total exceeds limit; a result above limit
// only means "more than limit".
func (c *Constraints) Count(words []Word, limit int) int {
	var required [AlphabetSize]uint8
	nreq := 0
	for l, m := range c.minCount {
		if m != 0 {
			required[nreq] = uint8(l)
			nreq++
		}
	}

	n := 0
	for i := range words {
		w := &words[i]
		if !c.meetsPositions(w) || !c.meetsMax(w) {
			continue
		}
		ok := true
		for _, l := range required[:nreq] {
			if w.counts[l] < c.minCount[l] {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		n++
		if n > limit {
			return n
		}
	}
	return n
}
