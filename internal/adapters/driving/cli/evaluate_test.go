package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/wordle-cli/internal/core/domain"
)

func TestEvaluateCmd(t *testing.T) {
	tests := []struct {
		guess, answer, want string
	}{
		{"crane", "trace", "YGGBG"},
		{"SPEED", "ERASE", "YBYYB"},
		{"TRACE", "TRACE", "GGGGG"},
	}

	for _, tt := range tests {
		t.Run(tt.guess+"/"+tt.answer, func(t *testing.T) {
			out, err := execute(t, "evaluate", tt.guess, tt.answer)

			assert.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestEvaluateCmd_Malformed(t *testing.T) {
	_, err := execute(t, "evaluate", "CRAN", "TRACE")
	assert.ErrorIs(t, err, domain.ErrMalformedGuess)

	_, err = execute(t, "evaluate", "CRANE", "TRACES")
	assert.ErrorIs(t, err, domain.ErrMalformedGuess)
}

func TestEvaluateCmd_RequiresTwoArgs(t *testing.T) {
	_, err := execute(t, "evaluate", "CRANE")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}
