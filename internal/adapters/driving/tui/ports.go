// Package tui provides an interactive terminal user interface for the ARES
// lookup tool. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/ares-tools/ares-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Lookup resolves identifiers against the registry.
	Lookup driving.LookupService
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Lookup == nil {
		return ErrMissingLookupService
	}
	return nil
}
