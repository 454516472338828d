package driven

import "github.com/custodia-labs/tome-cli/internal/core/domain"

// Renderer consumes a finished book. Implementations may traverse the
// book read-only via Book.Iter, or request content rewrites through
// Book.ForEachMut before producing output; either way the book's shape
// and traversal order are guaranteed stable.
type Renderer interface {
	// Name returns the renderer's identifier, e.g. "text".
	Name() string

	// Render writes the book to the renderer's destination.
	Render(book *domain.Book) error
}
