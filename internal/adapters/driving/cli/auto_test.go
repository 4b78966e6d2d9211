package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "auto", "--limit", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "Played 2 games")
	assert.Contains(t, out, "|")
}

func TestAutoCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "auto", "--json")
	require.NoError(t, err)

	var got autoOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, len(testAnswers), got.Games)
	require.Len(t, got.Results, len(testAnswers))
	for i, r := range got.Results {
		assert.Equal(t, testAnswers[i], r.Answer)
		assert.True(t, r.Solved)
		assert.Equal(t, "ARISE", r.Guesses[0])
		assert.Equal(t, r.Answer, r.Guesses[len(r.Guesses)-1])
	}
	assert.Empty(t, got.Failures)
}

func TestBarLength(t *testing.T) {
	assert.Zero(t, barLength(0, 10))
	assert.Zero(t, barLength(3, 0))
	assert.Equal(t, 1, barLength(1, 1000), "non-zero counts stay visible")
	assert.Equal(t, 40, barLength(10, 10))
	assert.Equal(t, 20, barLength(5, 10))
}
