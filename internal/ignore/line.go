package ignore

import "strings"

// LineKind is the classification of one line of the ignore file.
type LineKind uint8

const (
	// KindBlank is a line whose trimmed text is empty.
	KindBlank LineKind = iota
	// KindComment is a line whose trimmed text starts with "#".
	KindComment
	// KindPattern is a glob or negation line, preserved verbatim.
	KindPattern
	// KindLiteral is a concrete path entry.
	KindLiteral
)

// ParseLines splits file text into lines. CRLF is normalized to LF and a
// single trailing terminator does not produce a phantom blank last line.
func ParseLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// SerializeLines renders lines back to file text with exactly one trailing
// terminator, or the empty string for an empty sequence.
func SerializeLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}

// Classify tags a line, evaluated in priority order: blank, comment,
// pattern, literal.
func Classify(line string) LineKind {
	t := strings.TrimSpace(line)
	switch {
	case t == "":
		return KindBlank
	case strings.HasPrefix(t, "#"):
		return KindComment
	case isPattern(t):
		return KindPattern
	default:
		return KindLiteral
	}
}

// isPattern reports whether trimmed text carries glob or negation syntax.
func isPattern(t string) bool {
	return strings.HasPrefix(t, "!") || strings.ContainsAny(t, "*?[]")
}
