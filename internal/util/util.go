package util

import (
	"os"
	"strings"
)

// Exists reports whether a path exists on disk.
func Exists(p string) bool {
	_, err := os.Lstat(p)
	return err == nil
}

// SplitList splits comma- or newline-separated user input into trimmed,
// non-empty items.
func SplitList(in string) []string {
	fields := strings.FieldsFunc(in, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if len(f) != 0 {
			out = append(out, f)
		}
	}
	return out
}
