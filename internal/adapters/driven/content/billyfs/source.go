package billyfs

import (
	"fmt"
	"os"
	"path"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/custodia-labs/tome-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.ContentSource = (*Source)(nil)

// Source is a driven.ContentSource over a billy filesystem rooted at
// the book's content directory. The chroot semantics of billy resolve
// leading separators against the root and reject paths that climb out
// of it.
type Source struct {
	fs billy.Filesystem
}

// New creates a content source over an existing billy filesystem.
func New(fs billy.Filesystem) *Source {
	return &Source{fs: fs}
}

// NewOS creates a content source rooted at a directory on the local
// filesystem.
func NewOS(root string) *Source {
	return New(osfs.New(root))
}

// Read returns the file content at location.
func (s *Source) Read(location string) (string, error) {
	info, err := s.fs.Stat(location)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory, not a chapter file", location)
	}

	data, err := util.ReadFile(s.fs, location)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Exists reports whether anything exists at location.
func (s *Source) Exists(location string) (bool, error) {
	_, err := s.fs.Stat(location)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Create writes initial content to location, creating parent
// directories as needed. Existing files are never overwritten.
func (s *Source) Create(location, content string) error {
	exists, err := s.Exists(location)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%s: %w", location, os.ErrExist)
	}

	if dir := path.Dir(location); dir != "." && dir != "/" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return util.WriteFile(s.fs, location, []byte(content), 0o644)
}

// Root returns the content root path of the underlying filesystem.
func (s *Source) Root() string {
	return s.fs.Root()
}
