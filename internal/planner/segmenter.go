package planner

import (
	"regexp"
	"strings"
)

// Section is a titled slice of raw plan text produced by the segmenter.
type Section struct {
	Title   string
	Content string
}

// sectionHeadings is the fixed vocabulary of recognized headings. A line
// matching several prefixes resolves to whichever is tested first here.
var sectionHeadings = []string{"Summary", "Workout Plan", "Diet Plan", "Tips", "Motivation"}

// defaultSectionTitle is used for content appearing before the first heading.
const defaultSectionTitle = "Plan"

// Segment splits raw plan text into titled sections by scanning lines for
// known heading prefixes. Section order reflects first appearance; sections
// holding only whitespace are dropped entirely.
func Segment(text string) []Section {
	var sections []Section
	title := defaultSectionTitle
	var buf []string

	flush := func() {
		content := strings.Join(buf, "\n")
		if strings.TrimSpace(content) != "" {
			sections = append(sections, Section{Title: title, Content: content})
		}
		buf = nil
	}

	for _, line := range strings.Split(text, "\n") {
		heading, rest, ok := matchHeading(line)
		if !ok {
			buf = append(buf, line)
			continue
		}
		flush()
		title = heading
		if rest != "" {
			buf = append(buf, rest)
		}
	}
	flush()

	return sections
}

// matchHeading reports whether the trimmed line starts, case-insensitively,
// with a recognized heading. The heading text keeps its original casing with
// any trailing colon stripped; whatever follows it seeds the new section.
func matchHeading(line string) (heading, rest string, ok bool) {
	trimmed := strings.TrimSpace(line)
	for _, h := range sectionHeadings {
		if len(trimmed) < len(h) || !strings.EqualFold(trimmed[:len(h)], h) {
			continue
		}
		heading = trimmed[:len(h)]
		rest = strings.TrimSpace(strings.TrimPrefix(trimmed[len(h):], ":"))
		return heading, rest, true
	}
	return "", "", false
}

// LineKind distinguishes bullet items from plain paragraph lines.
type LineKind int

const (
	Paragraph LineKind = iota
	Bullet
)

// Line is a display-ready line of section content.
type Line struct {
	Kind LineKind
	Text string
}

// IsBullet reports whether the line renders as a list item.
func (l Line) IsBullet() bool { return l.Kind == Bullet }

var bulletMarker = regexp.MustCompile(`^\s*(?:[-*]|\d+\.)\s*`)

// FormatLine classifies a single line as a bullet item or paragraph,
// stripping the recognized marker prefix before display.
func FormatLine(line string) Line {
	if m := bulletMarker.FindString(line); m != "" {
		return Line{Kind: Bullet, Text: strings.TrimSpace(line[len(m):])}
	}
	return Line{Kind: Paragraph, Text: strings.TrimSpace(line)}
}

// FormatLines converts a section's content into display lines, skipping
// blank ones.
func FormatLines(content string) []Line {
	var lines []Line
	for _, raw := range strings.Split(content, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		lines = append(lines, FormatLine(raw))
	}
	return lines
}
