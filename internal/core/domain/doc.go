// Package domain defines the core business entities for the ARES lookup tool.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - ICO: The canonical eight-digit business identifier
//   - Subject: A registered economic subject as returned by the registry
//   - Address: The registered seat of a subject
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
