// Package domain defines the core business entities for Tome.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Summary: The parsed, pre-resolution outline of a book
//   - Link: A summary entry pointing at chapter content
//   - SectionNumber: Dotted hierarchical chapter position
//   - Book: The fully resolved, content-loaded chapter tree
//   - Chapter: A resolved chapter with content and parent chain
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
