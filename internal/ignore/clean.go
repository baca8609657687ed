package ignore

import "strings"

// Options are the formatting policies applied while cleaning and building
// entries.
type Options struct {
	// BaseEntries are always expected present; order controls prepend order.
	BaseEntries []string
	// AddWithLeadingSlash anchors newly built entries at the file's directory.
	AddWithLeadingSlash bool
	// TrailingSlashForFolders suffixes directory entries with "/".
	TrailingSlashForFolders bool
	// RemoveEmptyLines drops blank lines while cleaning.
	RemoveEmptyLines bool
	// RemoveComments drops comment lines while cleaning.
	RemoveComments bool
	// Sort reorders the surviving lines lexicographically.
	Sort bool
}

// DefaultOptions returns the stock policies.
func DefaultOptions() Options {
	return Options{
		BaseEntries:             []string{".DS_Store"},
		AddWithLeadingSlash:     true,
		TrailingSlashForFolders: true,
	}
}

// Result reports what a cleaning pass did. Lines is authoritative; the
// counters are informational only.
type Result struct {
	Lines             []string
	DuplicatesRemoved int
	EmptyLinesRemoved int
	CommentsRemoved   int
	SortApplied       bool
	BaseEntriesAdded  bool
}

// Changed reports whether the pass altered anything worth telling the user.
func (r Result) Changed() bool {
	return r.DuplicatesRemoved > 0 || r.EmptyLinesRemoved > 0 ||
		r.CommentsRemoved > 0 || r.SortApplied || r.BaseEntriesAdded
}

// entryMeta accumulates per-key facts across all occurrences of a literal
// entry before any line is rendered.
type entryMeta struct {
	sawFolderSyntax bool
	pathType        PathType
}

// Clean runs the full normalization pass over file text: trim, optional
// blank/comment filtering, key-based deduplication with canonical rendering,
// base-entry enforcement and optional sorting.
func Clean(text string, opts Options, probe Prober) Result {
	return CleanLines(ParseLines(text), opts, probe)
}

// CleanLines is Clean operating on an already-parsed line sequence.
func CleanLines(lines []string, opts Options, probe Prober) Result {
	var res Result

	trimmed := make([]string, 0, len(lines))
	for _, l := range lines {
		trimmed = append(trimmed, strings.TrimSpace(l))
	}

	kept := make([]string, 0, len(trimmed))
	for _, l := range trimmed {
		switch Classify(l) {
		case KindBlank:
			if opts.RemoveEmptyLines {
				res.EmptyLinesRemoved++
				continue
			}
		case KindComment:
			if opts.RemoveComments {
				res.CommentsRemoved++
				continue
			}
		}
		kept = append(kept, l)
	}

	// Two phases: gather every key's folder syntax and on-disk type first,
	// render second. No line is rendered from a partially resolved batch.
	metas := collectMeta(kept)
	for key, pt := range resolveTypes(metaKeys(metas), probe) {
		metas[key].pathType = pt
	}

	out, dups := canonicalize(kept, metas, opts)
	res.DuplicatesRemoved = dups

	out, res.BaseEntriesAdded = EnsureBaseEntries(out, opts.BaseEntries)

	if opts.Sort {
		out, res.SortApplied = sortLines(out)
	}

	if opts.RemoveEmptyLines {
		out = collapseBlankRuns(out)
	}

	res.Lines = out
	return res
}

// collectMeta builds the per-key accumulator over trimmed lines.
func collectMeta(lines []string) map[string]*entryMeta {
	metas := make(map[string]*entryMeta)
	for _, l := range lines {
		if Classify(l) != KindLiteral {
			continue
		}
		k := Key(l)
		if k == "" {
			continue
		}
		m := metas[k]
		if m == nil {
			m = &entryMeta{}
			metas[k] = m
		}
		if strings.HasSuffix(l, "/") {
			m.sawFolderSyntax = true
		}
	}
	return metas
}

func metaKeys(metas map[string]*entryMeta) []string {
	keys := make([]string, 0, len(metas))
	for k := range metas {
		keys = append(keys, k)
	}
	return keys
}

// canonicalize walks lines in original order, keeping the first occurrence
// per key and re-rendering it canonically. Pattern lines dedup by exact text
// in their own pool and never collide with literals.
func canonicalize(lines []string, metas map[string]*entryMeta, opts Options) ([]string, int) {
	out := make([]string, 0, len(lines))
	firstSeen := make(map[string]variant)
	seenPattern := make(map[string]struct{})
	dups := 0

	for _, l := range lines {
		switch Classify(l) {
		case KindLiteral:
			k := Key(l)
			// A line of nothing but slashes has no key; dropping it
			// beats emitting it as a blank line.
			if k == "" {
				continue
			}
			v := variantOf(l)
			first, seen := firstSeen[k]
			if !seen {
				firstSeen[k] = v
				out = append(out, renderLine(k, entryIsFolder(metas[k]), v, opts))
				continue
			}
			// Only one line per key ever survives. A pure trailing-slash
			// divergence while the slash policy is off is a format
			// difference, dropped but not reported as a duplicate.
			if v.trailingSlash == first.trailingSlash || opts.TrailingSlashForFolders {
				dups++
			}
		case KindPattern:
			if _, ok := seenPattern[l]; ok {
				dups++
				continue
			}
			seenPattern[l] = struct{}{}
			out = append(out, l)
		default:
			out = append(out, l)
		}
	}

	return out, dups
}

// entryIsFolder resolves folder-ness for rendering: the probed type is
// authoritative; an unresolved type falls back to the observed syntax.
func entryIsFolder(m *entryMeta) bool {
	switch m.pathType {
	case PathDirectory:
		return true
	case PathFile, PathSymlink:
		return false
	default:
		return m.sawFolderSyntax
	}
}

// collapseBlankRuns reduces runs of consecutive blank lines to one and trims
// trailing blanks. Defensive pass behind the blank-removal policy.
func collapseBlankRuns(lines []string) []string {
	out := make([]string, 0, len(lines))
	prevBlank := false
	for _, l := range lines {
		blank := Classify(l) == KindBlank
		if blank && prevBlank {
			continue
		}
		prevBlank = blank
		out = append(out, l)
	}
	for len(out) > 0 && Classify(out[len(out)-1]) == KindBlank {
		out = out[:len(out)-1]
	}
	return out
}
