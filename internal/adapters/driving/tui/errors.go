package tui

import "errors"

// ErrMissingGameService is returned when the game service is not provided.
var ErrMissingGameService = errors.New("tui: game service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
