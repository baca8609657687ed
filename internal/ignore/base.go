package ignore

// EnsureBaseEntries prepends every configured base entry whose key is not
// already present among the literal lines. Entries are prepended in reverse
// configured order so the final file lists them in configured order.
// Idempotent; an empty base set disables enforcement.
func EnsureBaseEntries(lines []string, base []string) ([]string, bool) {
	if len(base) == 0 {
		return lines, false
	}

	present := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if Classify(l) == KindLiteral {
			present[Key(l)] = struct{}{}
		}
	}

	added := false
	for i := len(base) - 1; i >= 0; i-- {
		e := base[i]
		if _, ok := present[Key(e)]; ok {
			continue
		}
		lines = append([]string{e}, lines...)
		present[Key(e)] = struct{}{}
		added = true
	}

	return lines, added
}
