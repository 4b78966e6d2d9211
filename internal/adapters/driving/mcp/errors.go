// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// solver. It lets AI assistants score guesses and narrow down answers.
package mcp

import "errors"

// ErrMissingGameService is returned when the game service is not provided.
var ErrMissingGameService = errors.New("mcp: game service is required")
