package ignore

import "strings"

// Key reduces a literal entry to its canonical dedup identity: trimmed text
// with all leading and trailing slashes stripped. "node_modules",
// "/node_modules", "node_modules/" and "/node_modules/" share one key.
// Comparison is exact-character after whitespace trimming.
func Key(text string) string {
	t := strings.TrimSpace(text)
	t = strings.TrimLeft(t, "/")
	t = strings.TrimRight(t, "/")
	return t
}

// variant records the formatting of one occurrence of a literal entry.
type variant struct {
	anchored      bool
	trailingSlash bool
}

// variantOf derives the formatting variant from trimmed literal text.
func variantOf(t string) variant {
	return variant{
		anchored:      strings.HasPrefix(t, "/"),
		trailingSlash: strings.HasSuffix(t, "/"),
	}
}
