// Package mcp provides an MCP (Model Context Protocol) server adapter for whatif.
// It lets AI assistants run what-if simulations and browse saved decisions.
package mcp

import "errors"

// ErrMissingSimulator is returned when the simulator is not provided.
var ErrMissingSimulator = errors.New("mcp: simulator is required")
