package driven

import (
	"context"

	"github.com/ares-tools/ares-cli/internal/core/domain"
)

// RegistryClient fetches subject records from the remote business registry.
// Implementations perform one synchronous round-trip per call and carry no
// state between calls.
type RegistryClient interface {
	// FetchSubject retrieves the record for a canonical identifier.
	// Returns an error matching domain.ErrNotFound when the registry
	// reports no subject or cannot be reached, and an error matching
	// domain.ErrMalformedResponse when a success response cannot be
	// decoded.
	FetchSubject(ctx context.Context, ico domain.ICO) (*domain.Subject, error)
}
