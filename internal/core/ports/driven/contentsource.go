package driven

// ContentSource is a file-like store addressable by path, rooted at the
// book's content directory. Locations beginning with a separator are
// resolved against the root; everything else is root-relative. The core
// treats content as opaque text and never parses the markup inside.
type ContentSource interface {
	// Read returns the content at location. It fails if the location
	// is missing, is a directory, or cannot be read.
	Read(location string) (string, error)

	// Exists reports whether a file exists at location.
	Exists(location string) (bool, error)

	// Create writes initial content to location, creating parent
	// directories as needed. It must not be used to overwrite.
	Create(location string, content string) error
}
