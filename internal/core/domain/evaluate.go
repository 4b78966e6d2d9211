package domain

// Evaluate computes the feedback for guess against answer.
//
// Greens are marked first and consume their letter from the answer, then the
// remaining positions are marked yellow while unconsumed occurrences are left,
// black otherwise. A letter guessed twice but present once therefore gets one
// mark that is not black, never two.
func Evaluate(guess, answer Word) Feedback {
	var fb Feedback
	left := answer.counts

	for i := range WordLength {
		if guess.letters[i] == answer.letters[i] {
			fb[i] = ColorGreen
			left[guess.letters[i]]--
		}
	}

	for i := range WordLength {
		if fb[i] == ColorGreen {
			continue
		}
		l := guess.letters[i]
		if left[l] > 0 {
			fb[i] = ColorYellow
			left[l]--
		} else {
			fb[i] = ColorBlack
		}
	}

	return fb
}
