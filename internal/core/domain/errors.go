package domain

import "errors"

// Domain errors represent parse and resolution failures.
// These are distinct from infrastructure errors.
var (
	// ErrIndentation indicates a summary line is indented by a partial
	// unit (leftover spaces that do not complete a level).
	ErrIndentation = errors.New("indentation error")

	// ErrStructure indicates an ordering or nesting invariant was
	// violated: children under a non-chapter item, affix items or
	// separators below root level, or a numbered chapter after back
	// matter has started.
	ErrStructure = errors.New("summary structure error")

	// ErrContentNotFound indicates a link's target could not be read
	// (missing file, directory target, permission failure).
	ErrContentNotFound = errors.New("chapter content not found")

	// ErrPathEscape indicates a chapter location resolves outside the
	// content root.
	ErrPathEscape = errors.New("chapter path escapes the content root")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
