// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It enables AI assistants like Claude to resolve Czech business
// identifiers through the lookup service.
package mcp

import "errors"

// ErrMissingLookupService is returned when the lookup service is not provided.
var ErrMissingLookupService = errors.New("mcp: lookup service is required")
