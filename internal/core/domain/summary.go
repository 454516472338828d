package domain

import (
	"strconv"
	"strings"
)

// SectionNumber is the dotted hierarchical position of a numbered
// chapter, e.g. "1.2.3.". Its length equals the chapter's nesting depth.
type SectionNumber []uint32

// String renders the section number with a trailing dot, e.g. "1.2.".
func (n SectionNumber) String() string {
	var sb strings.Builder
	for _, part := range n {
		sb.WriteString(strconv.FormatUint(uint64(part), 10))
		sb.WriteByte('.')
	}
	return sb.String()
}

// SummaryItem is one entry in a summary group: either a *Link or a
// Separator. The set of implementations is closed; consumers dispatch
// with a type switch.
type SummaryItem interface {
	isSummaryItem()
}

// Separator is a structural divider between items. It carries no
// payload and appears in both summaries and resolved books.
type Separator struct{}

func (Separator) isSummaryItem() {}

// Link is a summary entry referencing chapter content. The location is
// relative to the content root unless it begins with a path separator.
type Link struct {
	// Name is the chapter's display name.
	Name string

	// Location is the target content path.
	Location string

	// Number is the section number assigned at parse time, nil for
	// front-matter and back-matter entries.
	Number SectionNumber

	// NestedItems are the link's children, in declaration order.
	NestedItems []SummaryItem
}

func (*Link) isSummaryItem() {}

// NewLink creates a link with no number or children.
func NewLink(name, location string) *Link {
	return &Link{Name: name, Location: location}
}

// Summary is the validated outline of a book before resolution. The
// three groups are ordered: front matter, numbered chapters, back
// matter. Front- and back-matter entries never carry section numbers.
type Summary struct {
	// Title is the book title taken from the summary's leading H1
	// heading, if present.
	Title string

	// PrefixChapters are the front-matter items.
	PrefixChapters []SummaryItem

	// NumberedChapters are the numbered chapter items.
	NumberedChapters []SummaryItem

	// SuffixChapters are the back-matter items.
	SuffixChapters []SummaryItem
}

// Items returns the top-level items of all three groups in reading
// order: prefix, numbered, suffix.
func (s *Summary) Items() []SummaryItem {
	items := make([]SummaryItem, 0, len(s.PrefixChapters)+len(s.NumberedChapters)+len(s.SuffixChapters))
	items = append(items, s.PrefixChapters...)
	items = append(items, s.NumberedChapters...)
	items = append(items, s.SuffixChapters...)
	return items
}
