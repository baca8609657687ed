package ignore

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortLines returns a stably sorted copy of lines using locale-aware
// collation, and whether the order actually changed. Blank lines are not
// part of the ordering: they stay pinned at their positions and only the
// literal, pattern and comment lines sort around them. Sorting an
// already-sorted sequence is not reported as a change.
func sortLines(lines []string) ([]string, bool) {
	sorted := make([]string, len(lines))
	copy(sorted, lines)

	slots := make([]int, 0, len(lines))
	vals := make([]string, 0, len(lines))
	for i, l := range lines {
		if Classify(l) == KindBlank {
			continue
		}
		slots = append(slots, i)
		vals = append(vals, l)
	}

	c := collate.New(language.Und)
	sort.SliceStable(vals, func(i, j int) bool {
		if r := c.CompareString(vals[i], vals[j]); r != 0 {
			return r < 0
		}
		return vals[i] < vals[j]
	})

	for n, i := range slots {
		sorted[i] = vals[n]
	}

	for i := range lines {
		if lines[i] != sorted[i] {
			return sorted, true
		}
	}
	return sorted, false
}
