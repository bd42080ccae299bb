// Package markdown renders the light markup the assistant is instructed to
// use: #-headings, -/* bullets, and **bold** spans. It is a display concern
// only; stored message content is never altered.
package markdown

import "strings"

type LineKind int

const (
	LineText LineKind = iota
	LineHeading
	LineBullet
)

// Span is a run of text that is either plain or bold.
type Span struct {
	Bold bool
	Text string
}

// Line is one rendered line of output.
type Line struct {
	Kind  LineKind
	Level int // heading level 1-6, zero otherwise
	Spans []Span
}

// Render splits content into lines and classifies each one. Lines beginning
// with 1-6 '#' characters become headings sized by level; lines beginning
// with '-' or '*' become bullets with the marker stripped; '**' pairs split
// any line into alternating plain/bold spans by position.
func Render(content string) []Line {
	raw := strings.Split(content, "\n")
	out := make([]Line, 0, len(raw))
	for _, line := range raw {
		out = append(out, renderLine(line))
	}
	return out
}

func renderLine(raw string) Line {
	trimmed := strings.TrimSpace(raw)

	if level := headingLevel(trimmed); level > 0 {
		text := strings.TrimLeft(trimmed[level:], " \t")
		return Line{Kind: LineHeading, Level: level, Spans: spans(text)}
	}

	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return Line{Kind: LineBullet, Spans: spans(strings.TrimLeft(trimmed[2:], " \t"))}
	}

	return Line{Kind: LineText, Spans: spans(trimmed)}
}

// headingLevel returns the number of leading '#' characters when the line is
// a heading, zero otherwise. Seven or more hashes, or a missing separator
// space, keep the line as plain text.
func headingLevel(line string) int {
	count := 0
	for count < len(line) && line[count] == '#' {
		count++
	}
	if count < 1 || count > 6 {
		return 0
	}
	if count == len(line) || (line[count] != ' ' && line[count] != '\t') {
		return 0
	}
	return count
}

// spans splits text on "**" delimiters, alternating plain and bold by split
// position. An unmatched trailing delimiter bolds the remainder, matching how
// a positional split behaves.
func spans(text string) []Span {
	parts := strings.Split(text, "**")
	out := make([]Span, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			continue
		}
		out = append(out, Span{Bold: i%2 == 1, Text: part})
	}
	return out
}

const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// ToANSI serializes rendered lines for a terminal: headings are bold, bullets
// get a dot marker, bold spans use SGR bold.
func ToANSI(content string) string {
	var b strings.Builder
	for _, line := range Render(content) {
		switch line.Kind {
		case LineHeading:
			b.WriteString(ansiBold)
			for _, s := range line.Spans {
				b.WriteString(s.Text)
			}
			b.WriteString(ansiReset)
		case LineBullet:
			b.WriteString("  • ")
			writeSpans(&b, line.Spans)
		default:
			writeSpans(&b, line.Spans)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeSpans(b *strings.Builder, spans []Span) {
	for _, s := range spans {
		if s.Bold {
			b.WriteString(ansiBold)
			b.WriteString(s.Text)
			b.WriteString(ansiReset)
		} else {
			b.WriteString(s.Text)
		}
	}
}
