package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/tui"
)

func TestTUICmd_ShortDescription(t *testing.T) {
	assert.Equal(t, "Launch the interactive terminal UI", tuiCmd.Short)
}

func TestTUICmd_HelpOutput(t *testing.T) {
	out, err := execute(t, "tui", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "interactive terminal user interface")
	assert.Contains(t, out, "Controls:")
}

func TestTUICmd_WithoutServices(t *testing.T) {
	defer resetCommands()

	_, err := execute(t, "tui")

	assert.ErrorIs(t, err, tui.ErrMissingGameService)
}

func TestMCPServeCmd_HelpOutput(t *testing.T) {
	out, err := execute(t, "mcp", "serve", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "Model Context Protocol")
	assert.Contains(t, out, "recommend")
}

func TestMCPServeCmd_WithoutServices(t *testing.T) {
	defer resetCommands()

	_, err := execute(t, "mcp", "serve")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "game service is required")
}
