package mcp

import (
	"context"

	"github.com/ares-tools/ares-cli/internal/core/domain"
)

// mockLookupService is a mock implementation of driving.LookupService.
type mockLookupService struct {
	subject *domain.Subject
	desc    string
	err     error
}

func (m *mockLookupService) Lookup(_ context.Context, _ domain.ICO) (*domain.Subject, error) {
	return m.subject, m.err
}

func (m *mockLookupService) LookupRaw(_ context.Context, _ string) (*domain.Subject, error) {
	return m.subject, m.err
}

func (m *mockLookupService) Describe(_ context.Context, _ string) (string, error) {
	return m.desc, m.err
}
