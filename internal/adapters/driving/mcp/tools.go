package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ares-tools/ares-cli/internal/core/domain"
)

// LookupInput is the input schema for the lookup_subject tool.
type LookupInput struct {
	ICO string `json:"ico" jsonschema:"the business identifier (IČO) to resolve, leading zeros may be omitted"`
}

// LookupOutput is the output schema for the lookup_subject tool.
type LookupOutput struct {
	Found             bool   `json:"found"`
	Name              string `json:"name,omitempty"`
	ICO               string `json:"ico,omitempty"`
	Address           string `json:"address,omitempty"`
	FormalDescription string `json:"formal_description,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lookup_subject",
		Description: "Resolve a Czech business identifier (IČO) to subject information from the ARES registry",
	}, s.handleLookup)
}

// handleLookup handles the lookup_subject tool invocation. A missing subject
// is a normal outcome and is reported as found=false; only invalid input
// surfaces as a tool error.
func (s *Server) handleLookup(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LookupInput,
) (*mcp.CallToolResult, LookupOutput, error) {
	subject, err := s.ports.Lookup.LookupRaw(ctx, input.ICO)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, LookupOutput{Found: false}, nil
		}
		return nil, LookupOutput{}, err
	}

	output := LookupOutput{
		Found:   true,
		Name:    subject.Name,
		ICO:     subject.ICO,
		Address: subject.Seat.Text,
	}

	// Best effort: sparse records still return their fields.
	if desc, err := subject.FormalDescription(); err == nil {
		output.FormalDescription = desc
	}

	return nil, output, nil
}
