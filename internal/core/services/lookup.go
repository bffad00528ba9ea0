// Package services implements the driving ports over the driven ports.
// Services hold the application logic that connects identifier
// normalization to the remote registry.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ares-tools/ares-cli/internal/core/domain"
	"github.com/ares-tools/ares-cli/internal/core/ports/driven"
	"github.com/ares-tools/ares-cli/internal/core/ports/driving"
	"github.com/ares-tools/ares-cli/internal/logger"
)

// Ensure LookupService implements the interface.
var _ driving.LookupService = (*LookupService)(nil)

// LookupService resolves identifiers against a registry client.
// Stateless across calls; every lookup is an independent transaction.
type LookupService struct {
	registry driven.RegistryClient
}

// NewLookupService creates a new lookup service.
func NewLookupService(registry driven.RegistryClient) *LookupService {
	return &LookupService{registry: registry}
}

// Lookup fetches the subject record for a canonical identifier.
func (s *LookupService) Lookup(ctx context.Context, ico domain.ICO) (*domain.Subject, error) {
	reqID := uuid.NewString()
	logger.Debug("lookup %s: fetching subject %s", reqID, ico)

	subject, err := s.registry.FetchSubject(ctx, ico)
	if err != nil {
		logger.Debug("lookup %s: %v", reqID, err)
		return nil, fmt.Errorf("fetch subject %s: %w", ico, err)
	}

	logger.Debug("lookup %s: found %q", reqID, subject.Name)
	return subject, nil
}

// LookupRaw normalizes untrusted input and fetches the record. No network
// call is made when normalization fails.
func (s *LookupService) LookupRaw(ctx context.Context, raw string) (*domain.Subject, error) {
	ico, err := domain.NormalizeICO(domain.StripWhitespace(raw))
	if err != nil {
		return nil, fmt.Errorf("normalize %q: %w", raw, err)
	}
	return s.Lookup(ctx, ico)
}

// Describe resolves raw input and renders the formal description.
func (s *LookupService) Describe(ctx context.Context, raw string) (string, error) {
	subject, err := s.LookupRaw(ctx, raw)
	if err != nil {
		return "", err
	}
	return subject.FormalDescription()
}
