package driving

import "github.com/custodia-labs/tome-cli/internal/core/domain"

// BookLoader turns a content tree into a fully resolved book.
type BookLoader interface {
	// Load reads and parses the summary, optionally creates missing
	// chapter files, and resolves the outline into a book. It returns
	// either a complete, validated book or an error; never a partial
	// tree.
	Load() (*domain.Book, error)

	// ParseSummary reads and parses the summary without resolving
	// chapter content.
	ParseSummary() (*domain.Summary, error)
}
