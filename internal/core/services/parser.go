package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/tome-cli/internal/core/domain"
	"github.com/custodia-labs/tome-cli/internal/logger"
)

// DefaultSpacesPerLevel is the indentation unit used when none is
// configured.
const DefaultSpacesPerLevel = 4

// SummaryParser turns the raw text of a SUMMARY.md into a validated
// domain.Summary. Parsing is a single forward pass over the lines,
// with a counter stack mirroring the current nesting.
type SummaryParser struct {
	spacesPerLevel int
}

// NewSummaryParser creates a parser using the given indentation unit.
// Values below one fall back to DefaultSpacesPerLevel.
func NewSummaryParser(spacesPerLevel int) *SummaryParser {
	if spacesPerLevel < 1 {
		spacesPerLevel = DefaultSpacesPerLevel
	}
	return &SummaryParser{spacesPerLevel: spacesPerLevel}
}

// Parse consumes the summary text and returns the validated outline:
// front matter, numbered chapters and back matter in declaration order.
// It fails with domain.ErrIndentation or domain.ErrStructure; no
// partial summary is ever returned.
func (p *SummaryParser) Parse(text string) (*domain.Summary, error) {
	st := &parseState{
		lines:          strings.Split(text, "\n"),
		spacesPerLevel: p.spacesPerLevel,
	}

	summary, err := st.parseRoot()
	if err != nil {
		return nil, err
	}

	logger.Debug("parsed summary: %d prefix, %d numbered, %d suffix items",
		len(summary.PrefixChapters), len(summary.NumberedChapters), len(summary.SuffixChapters))

	return summary, nil
}

// parseState carries the line cursor and the active section counters.
// One counter per nesting level; the root counter is set to the closed
// marker once back matter begins.
type parseState struct {
	lines          []string
	pos            int
	spacesPerLevel int

	// section mirrors the current nesting: section[i] is the number of
	// chapters seen so far at level i under the current parents.
	section []int
}

// closedMarker in section[0] means back matter has started and no
// further numbered chapter may appear.
const closedMarker = -1

func (st *parseState) peek() (string, bool) {
	if st.pos >= len(st.lines) {
		return "", false
	}
	return st.lines[st.pos], true
}

func (st *parseState) consume() {
	st.pos++
}

// parseRoot parses level 0, grouping items into prefix, numbered and
// suffix as the closed sentinel transitions.
func (st *parseState) parseRoot() (*domain.Summary, error) {
	summary := &domain.Summary{}
	st.section = []int{0}
	seenItem := false

	for {
		line, ok := st.peek()
		if !ok {
			return summary, nil
		}

		level, err := indentLevel(line, st.spacesPerLevel)
		if err != nil {
			return nil, err
		}

		if level > 0 {
			// Children attach to the most recent numbered chapter.
			parent, ok := lastLink(summary.NumberedChapters)
			if !ok || st.section[0] == closedMarker {
				return nil, fmt.Errorf("%w: prefix, suffix and separator items cannot have nested items", domain.ErrStructure)
			}
			st.section = append(st.section, 0)
			nested, err := st.parseLevel(level)
			if err != nil {
				return nil, err
			}
			st.section = st.section[:len(st.section)-1]
			parent.NestedItems = nested
			continue
		}

		kind, link := classifyLine(line)
		switch kind {
		case lineSkip:
			if title, ok := summaryTitle(line); ok && summary.Title == "" && !seenItem {
				summary.Title = title
			}

		case lineSeparator:
			seenItem = true
			switch {
			case st.section[0] == closedMarker:
				summary.SuffixChapters = append(summary.SuffixChapters, domain.Separator{})
			case st.section[0] > 0:
				summary.NumberedChapters = append(summary.NumberedChapters, domain.Separator{})
			default:
				summary.PrefixChapters = append(summary.PrefixChapters, domain.Separator{})
			}

		case lineAffix:
			seenItem = true
			if st.section[0] > 0 {
				// First affix item after numbering closes the book for
				// further numbered chapters.
				st.section[0] = closedMarker
			}
			if st.section[0] == closedMarker {
				summary.SuffixChapters = append(summary.SuffixChapters, link)
			} else {
				summary.PrefixChapters = append(summary.PrefixChapters, link)
			}

		case lineNumbered:
			seenItem = true
			if st.section[0] == closedMarker {
				return nil, fmt.Errorf("%w: no numbered chapters are allowed after back matter begins", domain.ErrStructure)
			}
			st.section[0]++
			link.Number = st.sectionNumber()
			summary.NumberedChapters = append(summary.NumberedChapters, link)
		}

		st.consume()
	}
}

// parseLevel parses items at currentLevel (> 0) until a shallower line
// or end of input, recursing for deeper lines. The shallower line is
// left unconsumed for the caller.
func (st *parseState) parseLevel(currentLevel int) ([]domain.SummaryItem, error) {
	var items []domain.SummaryItem

	for {
		line, ok := st.peek()
		if !ok {
			return items, nil
		}

		level, err := indentLevel(line, st.spacesPerLevel)
		if err != nil {
			return nil, err
		}

		if level < currentLevel {
			return items, nil
		}

		if level > currentLevel {
			parent, ok := lastLink(items)
			if !ok {
				return nil, fmt.Errorf("%w: prefix, suffix and separator items cannot have nested items", domain.ErrStructure)
			}
			st.section = append(st.section, 0)
			nested, err := st.parseLevel(level)
			if err != nil {
				return nil, err
			}
			st.section = st.section[:len(st.section)-1]
			parent.NestedItems = nested
			continue
		}

		kind, link := classifyLine(line)
		switch kind {
		case lineSkip:
			// Prose between items is ignored.

		case lineSeparator, lineAffix:
			return nil, fmt.Errorf("%w: prefix, suffix and separator items can only exist on the root level", domain.ErrStructure)

		case lineNumbered:
			st.section[len(st.section)-1]++
			link.Number = st.sectionNumber()
			items = append(items, link)
		}

		st.consume()
	}
}

// sectionNumber renders the current counter stack as a SectionNumber.
func (st *parseState) sectionNumber() domain.SectionNumber {
	number := make(domain.SectionNumber, len(st.section))
	for i, c := range st.section {
		number[i] = uint32(c)
	}
	return number
}

// lastLink returns the trailing item if it is a numbered link.
func lastLink(items []domain.SummaryItem) (*domain.Link, bool) {
	if len(items) == 0 {
		return nil, false
	}
	link, ok := items[len(items)-1].(*domain.Link)
	if !ok || link.Number == nil {
		return nil, false
	}
	return link, true
}

// indentLevel converts a line's leading whitespace into a nesting
// level. Each tab is one level; each spacesPerLevel run of spaces is
// one level. Leftover spaces that do not complete a unit are an
// indentation error.
func indentLevel(line string, spacesPerLevel int) (int, error) {
	spaces := 0
	level := 0

	for _, ch := range line {
		if ch == ' ' {
			spaces++
		} else if ch == '\t' {
			level++
		} else {
			break
		}
		if spaces >= spacesPerLevel {
			level++
			spaces = 0
		}
	}

	if spaces > 0 {
		logger.Debug("indentation should be %d spaces per level", spacesPerLevel)
		return 0, fmt.Errorf("%w on line: %q", domain.ErrIndentation, line)
	}

	return level, nil
}

// lineKind is the syntactic class of one summary line.
type lineKind int

const (
	// lineSkip is anything the parser ignores: blank lines, prose,
	// list items that are not links.
	lineSkip lineKind = iota
	lineSeparator
	lineNumbered
	lineAffix
)

// classifyLine determines a line's kind and, for link lines, extracts
// the display name and target location. Lines that look like items but
// have no well-formed link are skipped, not rejected; summaries often
// interleave prose with structure.
func classifyLine(line string) (lineKind, *domain.Link) {
	trimmed := strings.Trim(line, " \t")

	// Separators are "--", "---", "-------------", ...
	if strings.HasPrefix(trimmed, "--") {
		return lineSeparator, nil
	}

	if trimmed == "" {
		return lineSkip, nil
	}

	switch trimmed[0] {
	case '-', '*':
		if name, location, ok := readLink(trimmed); ok {
			return lineNumbered, domain.NewLink(name, location)
		}
	case '[':
		if name, location, ok := readLink(trimmed); ok {
			return lineAffix, domain.NewLink(name, location)
		}
	}

	return lineSkip, nil
}

// readLink extracts "[name](location)" from a line. The location is
// taken verbatim, anchors included; no validation happens here.
func readLink(line string) (name, location string, ok bool) {
	start := strings.Index(line, "[")
	if start < 0 {
		return "", "", false
	}

	mid := strings.Index(line[start:], "](")
	if mid < 0 {
		return "", "", false
	}
	mid += start

	end := strings.Index(line[mid+2:], ")")
	if end < 0 {
		return "", "", false
	}
	end += mid + 2

	return line[start+1 : mid], line[mid+2 : end], true
}

// summaryTitle extracts the book title from a leading H1 line.
func summaryTitle(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "# ") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(trimmed, "# ")), true
}
