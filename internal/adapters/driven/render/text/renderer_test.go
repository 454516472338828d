package text

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tome-cli/internal/core/domain"
)

func TestRenderer_Render(t *testing.T) {
	nested := domain.NewChapter("Nested", "", "nested.md", []string{"Chapter 1"})
	nested.Number = domain.SectionNumber{1, 1}

	ch1 := domain.NewChapter("Chapter 1", "", "chapter_1.md", nil)
	ch1.Number = domain.SectionNumber{1}
	ch1.SubItems = []domain.BookItem{nested}

	book := &domain.Book{
		Sections: []domain.BookItem{
			domain.NewChapter("Introduction", "", "intro.md", nil),
			ch1,
			domain.Separator{},
		},
	}

	var buf bytes.Buffer
	renderer := New(&buf)
	require.NoError(t, renderer.Render(book))

	assert.Equal(t, "Introduction\n1. Chapter 1\n  1.1. Nested\n------------\n", buf.String())
	assert.Equal(t, "text", renderer.Name())
}
