package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionNumber_String(t *testing.T) {
	tests := []struct {
		name   string
		number SectionNumber
		want   string
	}{
		{"empty", SectionNumber{}, ""},
		{"single", SectionNumber{1}, "1."},
		{"nested", SectionNumber{1, 2}, "1.2."},
		{"deep", SectionNumber{2, 1, 3}, "2.1.3."},
		{"double digits", SectionNumber{10, 12}, "10.12."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.number.String())
		})
	}
}

func TestNewLink(t *testing.T) {
	link := NewLink("Chapter 1", "chapter_1.md")

	assert.Equal(t, "Chapter 1", link.Name)
	assert.Equal(t, "chapter_1.md", link.Location)
	assert.Nil(t, link.Number)
	assert.Empty(t, link.NestedItems)
}

func TestSummary_Items_ReadingOrder(t *testing.T) {
	summary := &Summary{
		PrefixChapters:   []SummaryItem{NewLink("Intro", "intro.md")},
		NumberedChapters: []SummaryItem{NewLink("One", "one.md"), Separator{}, NewLink("Two", "two.md")},
		SuffixChapters:   []SummaryItem{NewLink("Glossary", "glossary.md")},
	}

	items := summary.Items()

	assert.Len(t, items, 5)
	assert.Equal(t, "Intro", items[0].(*Link).Name)
	assert.Equal(t, "One", items[1].(*Link).Name)
	assert.IsType(t, Separator{}, items[2])
	assert.Equal(t, "Two", items[3].(*Link).Name)
	assert.Equal(t, "Glossary", items[4].(*Link).Name)
}
