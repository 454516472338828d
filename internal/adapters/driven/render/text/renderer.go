// Package text renders a book's table of contents as plain text.
//
// It is the reference consumer of the Renderer port: it only traverses
// the finished book, never reaches back into parsing or resolution.
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/tome-cli/internal/core/domain"
	"github.com/custodia-labs/tome-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer writes an indented, numbered chapter listing.
type Renderer struct {
	out io.Writer
}

// New creates a renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Name returns the renderer identifier.
func (r *Renderer) Name() string {
	return "text"
}

// Render writes one line per book item, depth-first, indenting by
// nesting depth.
func (r *Renderer) Render(book *domain.Book) error {
	it := book.Iter()
	for {
		item, ok := it.Next()
		if !ok {
			return nil
		}

		var line string
		switch ch := item.(type) {
		case *domain.Chapter:
			line = indent(len(ch.ParentNames)) + ch.String()
		case *domain.VirtualChapter:
			if ch.Number != nil {
				line = indent(len(ch.Number)-1) + fmt.Sprintf("%s %s", ch.Number, ch.Name)
			} else {
				line = ch.Name
			}
		case domain.Separator:
			line = strings.Repeat("-", 12)
		}

		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return err
		}
	}
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
