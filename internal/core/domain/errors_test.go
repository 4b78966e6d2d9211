package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrMalformedGuess", ErrMalformedGuess},
		{"ErrMalformedFeedback", ErrMalformedFeedback},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrEmptyCorpus", ErrEmptyCorpus},
		{"ErrNoSecret", ErrNoSecret},
		{"ErrGameOver", ErrGameOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	all := []error{ErrMalformedGuess, ErrMalformedFeedback, ErrInvalidInput, ErrEmptyCorpus, ErrNoSecret, ErrGameOver}
	for i, a := range all {
		for j, b := range all {
			assert.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
		}
	}
}

// TestErrors_Wrapping tests that wrapped errors can be unwrapped
func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("turn 3: %w", ErrMalformedFeedback)
	assert.True(t, errors.Is(wrapped, ErrMalformedFeedback))
	assert.False(t, errors.Is(wrapped, ErrMalformedGuess))
}

func TestInvalidf(t *testing.T) {
	err := invalidf("workers must not be negative, got %d", -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "invalid input: workers must not be negative, got -1", err.Error())
}
