package tui

import "errors"

// ErrMissingSimulator is returned when the simulator is not provided.
var ErrMissingSimulator = errors.New("tui: simulator is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
