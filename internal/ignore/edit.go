package ignore

import "strings"

// AddLine merges one canonical line into the sequence. Nothing changes when
// a literal entry with the same key, or an identical pattern line, is
// already present: adding several paths under one symlinked ancestor
// collapses to a single surviving line this way.
func AddLine(lines []string, line string) ([]string, bool) {
	t := strings.TrimSpace(line)
	k := Key(t)

	for _, existing := range lines {
		e := strings.TrimSpace(existing)
		switch Classify(e) {
		case KindLiteral:
			if Classify(t) == KindLiteral && Key(e) == k {
				return lines, false
			}
		case KindPattern:
			if e == t {
				return lines, false
			}
		}
	}

	return append(lines, line), true
}

// RemoveKey drops every literal line whose key matches and reports how many
// were removed. Pattern, comment and blank lines are never touched.
func RemoveKey(lines []string, key string) ([]string, int) {
	out := make([]string, 0, len(lines))
	removed := 0
	for _, l := range lines {
		t := strings.TrimSpace(l)
		if Classify(t) == KindLiteral && Key(t) == key {
			removed++
			continue
		}
		out = append(out, l)
	}
	return out, removed
}
