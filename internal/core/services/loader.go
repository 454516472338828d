package services

import (
	"fmt"
	"path"
	"strings"

	"github.com/custodia-labs/tome-cli/internal/core/domain"
	"github.com/custodia-labs/tome-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tome-cli/internal/core/ports/driving"
	"github.com/custodia-labs/tome-cli/internal/logger"
)

// SummaryFile is the outline file name, relative to the content root.
const SummaryFile = "SUMMARY.md"

// Ensure LoaderService implements the interface.
var _ driving.BookLoader = (*LoaderService)(nil)

// LoaderOptions configure a LoaderService. The zero value gives the
// default indentation unit and no missing-chapter creation.
type LoaderOptions struct {
	// SpacesPerLevel is the summary indentation unit. Values below one
	// fall back to DefaultSpacesPerLevel.
	SpacesPerLevel int

	// CreateMissing creates stub files for summary links whose targets
	// do not exist, before resolution.
	CreateMissing bool
}

// LoaderService loads a book from a content source: it parses the
// summary, optionally creates missing chapter files, and resolves the
// outline into a domain.Book.
type LoaderService struct {
	source        driven.ContentSource
	parser        *SummaryParser
	createMissing bool
}

// NewLoaderService creates a loader over the given content source.
func NewLoaderService(source driven.ContentSource, opts LoaderOptions) *LoaderService {
	return &LoaderService{
		source:        source,
		parser:        NewSummaryParser(opts.SpacesPerLevel),
		createMissing: opts.CreateMissing,
	}
}

// ParseSummary reads SUMMARY.md from the content source and parses it.
func (s *LoaderService) ParseSummary() (*domain.Summary, error) {
	text, err := s.source.Read(SummaryFile)
	if err != nil {
		return nil, fmt.Errorf("couldn't open %s: %w", SummaryFile, err)
	}
	return s.parser.Parse(text)
}

// Load parses the summary and resolves it into a complete book. When
// missing-chapter creation is enabled, absent link targets are created
// with a stub heading first. Either a fully validated book or an error
// is returned, never a partial tree.
func (s *LoaderService) Load() (*domain.Book, error) {
	summary, err := s.ParseSummary()
	if err != nil {
		return nil, fmt.Errorf("summary parsing failed: %w", err)
	}

	if s.createMissing {
		if err := s.materialiseMissing(summary); err != nil {
			return nil, fmt.Errorf("unable to create missing chapters: %w", err)
		}
	}

	return s.loadFromSource(summary)
}

// materialiseMissing creates a stub file for every link in the summary
// whose target does not exist. Existing content is never overwritten,
// so a second run over the same tree is a no-op.
func (s *LoaderService) materialiseMissing(summary *domain.Summary) error {
	items := summary.Items()

	for len(items) > 0 {
		next := items[len(items)-1]
		items = items[:len(items)-1]

		link, ok := next.(*domain.Link)
		if !ok {
			continue
		}

		if link.Location == "" {
			items = append(items, link.NestedItems...)
			continue
		}

		exists, err := s.source.Exists(link.Location)
		if err != nil {
			return err
		}
		if !exists {
			logger.Debug("creating missing chapter file %s", link.Location)
			if err := s.source.Create(link.Location, fmt.Sprintf("# %s\n", link.Name)); err != nil {
				return err
			}
		}

		items = append(items, link.NestedItems...)
	}

	return nil
}

// loadFromSource resolves every summary item, in reading order, into a
// book item.
func (s *LoaderService) loadFromSource(summary *domain.Summary) (*domain.Book, error) {
	logger.Debug("loading the book from the content source")

	book := &domain.Book{}
	for _, item := range summary.Items() {
		resolved, err := s.loadSummaryItem(item, nil)
		if err != nil {
			return nil, err
		}
		book.PushItem(resolved)
	}

	return book, nil
}

func (s *LoaderService) loadSummaryItem(item domain.SummaryItem, parentNames []string) (domain.BookItem, error) {
	switch it := item.(type) {
	case domain.Separator:
		return domain.Separator{}, nil
	case *domain.Link:
		if it.Location == "" {
			return s.loadVirtualChapter(it, parentNames)
		}
		return s.loadChapter(it, parentNames)
	default:
		return nil, fmt.Errorf("%w: unknown summary item %T", domain.ErrInvalidInput, item)
	}
}

// loadChapter reads a link's content and recursively resolves its
// nested items, extending the parent-name chain.
func (s *LoaderService) loadChapter(link *domain.Link, parentNames []string) (*domain.Chapter, error) {
	logger.Debug("loading %q (%s)", link.Name, link.Location)

	relPath, err := chapterPath(link.Location)
	if err != nil {
		return nil, err
	}

	content, err := s.source.Read(link.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (%s): %v", domain.ErrContentNotFound, link.Name, link.Location, err)
	}

	chapter := domain.NewChapter(link.Name, content, relPath, parentNames)
	chapter.Number = append(domain.SectionNumber(nil), link.Number...)

	subParents := make([]string, 0, len(parentNames)+1)
	subParents = append(subParents, parentNames...)
	subParents = append(subParents, link.Name)

	for _, nested := range link.NestedItems {
		sub, err := s.loadSummaryItem(nested, subParents)
		if err != nil {
			return nil, err
		}
		chapter.SubItems = append(chapter.SubItems, sub)
	}

	return chapter, nil
}

// loadVirtualChapter resolves a link with no target file into a
// content-less chapter that still carries its nested items.
func (s *LoaderService) loadVirtualChapter(link *domain.Link, parentNames []string) (*domain.VirtualChapter, error) {
	logger.Debug("loading virtual chapter %q", link.Name)

	chapter := &domain.VirtualChapter{
		Name:   link.Name,
		Number: append(domain.SectionNumber(nil), link.Number...),
	}

	subParents := make([]string, 0, len(parentNames)+1)
	subParents = append(subParents, parentNames...)
	subParents = append(subParents, link.Name)

	for _, nested := range link.NestedItems {
		sub, err := s.loadSummaryItem(nested, subParents)
		if err != nil {
			return nil, err
		}
		chapter.SubItems = append(chapter.SubItems, sub)
	}

	return chapter, nil
}

// chapterPath normalises a link location into the chapter's path
// relative to the content root. Locations beginning with a separator
// resolve against the root; relative locations that climb out of the
// root are an invariant breach.
func chapterPath(location string) (string, error) {
	cleaned := path.Clean(location)

	if path.IsAbs(cleaned) {
		// A cleaned absolute path cannot contain "..", so it is always
		// under the root.
		return strings.TrimPrefix(cleaned, "/"), nil
	}

	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: %s", domain.ErrPathEscape, location)
	}

	return cleaned, nil
}
