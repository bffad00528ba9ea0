package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ares-tools/ares-cli/internal/core/domain"
)

func newTestServer(t *testing.T, mock *mockLookupService) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Lookup: mock})
	require.NoError(t, err)
	return server
}

func TestHandleLookup_Found(t *testing.T) {
	server := newTestServer(t, &mockLookupService{
		subject: &domain.Subject{
			Name: "Acme s.r.o.",
			ICO:  "00012345",
			Seat: domain.Address{Text: "Praha 1"},
		},
	})

	_, output, err := server.handleLookup(context.Background(), nil, LookupInput{ICO: "12345"})

	require.NoError(t, err)
	assert.True(t, output.Found)
	assert.Equal(t, "Acme s.r.o.", output.Name)
	assert.Equal(t, "00012345", output.ICO)
	assert.Equal(t, "Praha 1", output.Address)
	assert.Equal(t, "Acme s.r.o., IČO 00012345, sídlem Praha 1", output.FormalDescription)
}

func TestHandleLookup_NotFoundIsNotAToolError(t *testing.T) {
	server := newTestServer(t, &mockLookupService{err: domain.ErrNotFound})

	_, output, err := server.handleLookup(context.Background(), nil, LookupInput{ICO: "99999999"})

	require.NoError(t, err)
	assert.False(t, output.Found)
}

func TestHandleLookup_InvalidInputSurfacesAsError(t *testing.T) {
	server := newTestServer(t, &mockLookupService{err: domain.ErrICOTooLong})

	_, _, err := server.handleLookup(context.Background(), nil, LookupInput{ICO: "123456789"})

	assert.ErrorIs(t, err, domain.ErrICOTooLong)
}

func TestHandleLookup_SparseRecordOmitsDescription(t *testing.T) {
	server := newTestServer(t, &mockLookupService{
		subject: &domain.Subject{ICO: "00012345"},
	})

	_, output, err := server.handleLookup(context.Background(), nil, LookupInput{ICO: "12345"})

	require.NoError(t, err)
	assert.True(t, output.Found)
	assert.Empty(t, output.FormalDescription)
	assert.Equal(t, "00012345", output.ICO)
}
