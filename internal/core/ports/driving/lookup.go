package driving

import (
	"context"

	"github.com/ares-tools/ares-cli/internal/core/domain"
)

// LookupService resolves business identifiers against the remote registry.
type LookupService interface {
	// Lookup fetches the subject record for an already-canonical identifier.
	Lookup(ctx context.Context, ico domain.ICO) (*domain.Subject, error)

	// LookupRaw is the convenience path for untrusted input: it strips
	// whitespace, normalizes the identifier and then fetches the record.
	// Normalization failures propagate with their specific kind
	// (domain.ErrNonDigitICO, domain.ErrICOTooLong) rather than being
	// collapsed into not-found; presentation layers decide how much to
	// reveal.
	LookupRaw(ctx context.Context, raw string) (*domain.Subject, error)

	// Describe resolves raw input and renders the formal description
	// ("<name>, IČO <id>, sídlem <address>"). A record missing any of the
	// three fields yields an error matching domain.ErrIncompleteRecord.
	Describe(ctx context.Context, raw string) (string, error)
}
