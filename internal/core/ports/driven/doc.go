// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ContentSource: Rooted store the loader reads chapter files from
//     and the materialiser creates missing chapter files in
//
// # Optional Interfaces
//
//   - Renderer: Consumes the finished book. The core never calls it;
//     it exists so driving adapters can hand a book to a renderer
//     without depending on one concretely.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
