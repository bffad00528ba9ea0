package mcp

import (
	"github.com/ares-tools/ares-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Lookup resolves identifiers against the registry.
	Lookup driving.LookupService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Lookup == nil {
		return ErrMissingLookupService
	}
	return nil
}
