package pacman

import "strings"

// LineKind is the classification of one physical line of a block
type LineKind int

const (
	LineBlank LineKind = iota
	LineField
	LineContinuation
	LineMalformed
)

// String returns the string representation of LineKind
func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineField:
		return "field"
	case LineContinuation:
		return "continuation"
	default:
		return "malformed"
	}
}

// Line is a classified line. Field is set for LineField, Text (the
// optional dependency entry) for LineContinuation.
type Line struct {
	Kind  LineKind
	Field Field
	Text  string
}

// ClassifyLine decides whether a line opens a field, continues the
// Optional Deps list, or separates records.
func ClassifyLine(raw string) Line {
	line := strings.TrimRight(raw, " \t\r")
	if line == "" {
		return Line{Kind: LineBlank}
	}

	// Empty field name: "      : dep: desc" or "      dep: desc"
	if line[0] == ' ' || line[0] == '\t' {
		text := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(text, ":") {
			text = strings.TrimLeft(text[1:], " \t")
		}
		if text == "" {
			return Line{Kind: LineMalformed}
		}
		return Line{Kind: LineContinuation, Text: text}
	}

	if f, err := ParseField(line); err == nil {
		if isUpper(f.Name[0]) {
			return Line{Kind: LineField, Field: f}
		}
		// lowercase "name: description" is a dependency entry
		return Line{Kind: LineContinuation, Text: line}
	}

	if isUpper(line[0]) {
		return Line{Kind: LineMalformed}
	}
	if _, err := ParseOptionalDependency(line); err == nil {
		return Line{Kind: LineContinuation, Text: line}
	}

	return Line{Kind: LineMalformed}
}
