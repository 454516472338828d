package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dummyBook() *Book {
	return &Book{
		Sections: []BookItem{
			&Chapter{
				Name:    "Chapter 1",
				Content: "# Chapter 1\n",
				Path:    "chapter_1/index.md",
				SubItems: []BookItem{
					NewChapter("Hello World", "", "chapter_1/hello.md", []string{"Chapter 1"}),
					Separator{},
					NewChapter("Goodbye World", "", "chapter_1/goodbye.md", []string{"Chapter 1"}),
				},
			},
			Separator{},
		},
	}
}

func TestBook_Iter_SequentialItems(t *testing.T) {
	book := &Book{
		Sections: []BookItem{
			NewChapter("Chapter 1", "Hello", "chapter_1.md", nil),
			Separator{},
		},
	}

	var got []BookItem
	it := book.Iter()
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, item)
	}

	require.Len(t, got, 2)
	assert.Equal(t, book.Sections[0], got[0])
	assert.Equal(t, book.Sections[1], got[1])
}

func TestBook_Iter_NestedItems(t *testing.T) {
	book := dummyBook()

	var names []string
	count := 0
	it := book.Iter()
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		count++
		if ch, isChapter := item.(*Chapter); isChapter {
			names = append(names, ch.Name)
		}
	}

	assert.Equal(t, 5, count)
	// Parent before children, siblings in declaration order.
	assert.Equal(t, []string{"Chapter 1", "Hello World", "Goodbye World"}, names)
}

func TestBook_Iter_Restartable(t *testing.T) {
	book := dummyBook()

	first := book.Iter().Chapters()
	second := book.Iter().Chapters()

	assert.Equal(t, first, second)
}

func TestBook_ForEachMut_VisitsAllItems(t *testing.T) {
	book := dummyBook()

	total := 0
	it := book.Iter()
	for {
		if _, ok := it.Next(); !ok {
			break
		}
		total++
	}

	visited := 0
	book.ForEachMut(func(BookItem) { visited++ })

	assert.Equal(t, total, visited)
}

func TestBook_ForEachMut_RewritesContent(t *testing.T) {
	book := dummyBook()

	book.ForEachMut(func(item BookItem) {
		if ch, ok := item.(*Chapter); ok {
			ch.Content = "rewritten"
		}
	})

	for _, ch := range book.Iter().Chapters() {
		assert.Equal(t, "rewritten", ch.Content)
	}

	// Shape is unchanged: same traversal order of names.
	names := make([]string, 0, 3)
	for _, ch := range book.Iter().Chapters() {
		names = append(names, ch.Name)
	}
	assert.Equal(t, []string{"Chapter 1", "Hello World", "Goodbye World"}, names)
}

func TestBook_PushItem(t *testing.T) {
	book := &Book{}
	book.PushItem(NewChapter("One", "", "one.md", nil)).PushItem(Separator{})

	require.Len(t, book.Sections, 2)
}

func TestChapter_String(t *testing.T) {
	ch := NewChapter("Getting Started", "", "start.md", nil)
	assert.Equal(t, "Getting Started", ch.String())

	ch.Number = SectionNumber{1, 2}
	assert.Equal(t, "1.2. Getting Started", ch.String())
}
