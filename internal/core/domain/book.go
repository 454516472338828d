package domain

import "fmt"

// BookItem is one node in the resolved book tree: a *Chapter, a
// *VirtualChapter, or a Separator. The set of implementations is
// closed; consumers dispatch with a type switch.
type BookItem interface {
	isBookItem()
}

func (Separator) isBookItem() {}

// Chapter is the resolved materialisation of a Link: a single content
// file plus any nested sub-items.
type Chapter struct {
	// Name is the chapter's display name.
	Name string

	// Content is the full chapter text, stored opaquely.
	Content string

	// Number is the chapter's section number, nil for front-matter and
	// back-matter chapters.
	Number SectionNumber

	// SubItems are the chapter's nested items, in declaration order.
	SubItems []BookItem

	// Path is the chapter's location relative to the content root.
	Path string

	// ParentNames lists the display names of every chapter above this
	// one, root first. Metadata, not a structural edge.
	ParentNames []string
}

func (*Chapter) isBookItem() {}

// NewChapter creates a chapter with the provided content.
func NewChapter(name, content, path string, parentNames []string) *Chapter {
	return &Chapter{
		Name:        name,
		Content:     content,
		Path:        path,
		ParentNames: parentNames,
	}
}

// String renders the chapter as "<number> <name>".
func (c *Chapter) String() string {
	if c.Number != nil {
		return fmt.Sprintf("%s %s", c.Number, c.Name)
	}
	return c.Name
}

// VirtualChapter is a chapter used for namespacing only, not backed by
// a content file.
type VirtualChapter struct {
	Name     string
	Content  string
	Number   SectionNumber
	SubItems []BookItem
}

func (*VirtualChapter) isBookItem() {}

// Book is a tree of BookItems produced by one resolution run. Items
// are accessible either by iterating over the book with Iter, or by
// recursively applying a mutation to every item with ForEachMut.
type Book struct {
	// Sections are the book's top-level items: front matter, numbered
	// chapters, back matter, in declaration order.
	Sections []BookItem
}

// PushItem appends an item to the book's top-level sections.
func (b *Book) PushItem(item BookItem) *Book {
	b.Sections = append(b.Sections, item)
	return b
}

// Iter returns a depth-first iterator over the items in the book.
// Parents are visited before their children, siblings in declaration
// order. The iterator is independent of the book; calling Iter again
// restarts from the top.
func (b *Book) Iter() *BookItems {
	items := make([]BookItem, len(b.Sections))
	copy(items, b.Sections)
	return &BookItems{items: items}
}

// ForEachMut recursively applies fn to each item in the book, allowing
// it to mutate them in place. Every item is visited exactly once; a
// chapter's children are visited before the chapter itself. Traversal
// order and tree shape are unchanged afterwards, only payloads differ.
func (b *Book) ForEachMut(fn func(BookItem)) {
	forEachMut(fn, b.Sections)
}

func forEachMut(fn func(BookItem), items []BookItem) {
	for _, item := range items {
		switch it := item.(type) {
		case *Chapter:
			forEachMut(fn, it.SubItems)
		case *VirtualChapter:
			forEachMut(fn, it.SubItems)
		}
		fn(item)
	}
}

// BookItems is a depth-first iterator over the items in a book.
// Prefer Book.Iter over constructing this directly.
type BookItems struct {
	items []BookItem
}

// Next returns the next item in depth-first order, or false when the
// traversal is exhausted.
func (it *BookItems) Next() (BookItem, bool) {
	if len(it.items) == 0 {
		return nil, false
	}

	item := it.items[0]
	it.items = it.items[1:]

	// Push children to the front in order so they are visited before
	// the current item's siblings.
	switch ch := item.(type) {
	case *Chapter:
		it.items = append(ch.SubItems[:len(ch.SubItems):len(ch.SubItems)], it.items...)
	case *VirtualChapter:
		it.items = append(ch.SubItems[:len(ch.SubItems):len(ch.SubItems)], it.items...)
	}

	return item, true
}

// Chapters returns the remaining chapters in depth-first order,
// consuming the iterator. Separators and virtual chapters are skipped.
func (it *BookItems) Chapters() []*Chapter {
	var chapters []*Chapter
	for {
		item, ok := it.Next()
		if !ok {
			return chapters
		}
		if ch, ok := item.(*Chapter); ok {
			chapters = append(chapters, ch)
		}
	}
}
