package ignore

import "testing"

// fakeProbe serves canned path types; everything else reads as not found.
type fakeProbe map[string]PathType

func (f fakeProbe) PathType(rel string) (PathType, error) {
	if pt, ok := f[rel]; ok {
		return pt, nil
	}
	return PathNotFound, nil
}

func equalLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q (full: %q)", i, got[i], want[i], got)
		}
	}
}

func TestCleanEndToEnd(t *testing.T) {
	t.Parallel()

	text := "# comment\n\nnode_modules/\ndist/\nnode_modules/\nbuild/\n\nbuild/\n"
	opts := Options{
		BaseEntries:             []string{".DS_Store"},
		AddWithLeadingSlash:     true,
		TrailingSlashForFolders: true,
		RemoveEmptyLines:        true,
		RemoveComments:          true,
		Sort:                    true,
	}

	res := Clean(text, opts, nil)
	equalLines(t, res.Lines, []string{".DS_Store", "build/", "dist/", "node_modules/"})

	if res.DuplicatesRemoved != 2 {
		t.Fatalf("DuplicatesRemoved = %d, want 2", res.DuplicatesRemoved)
	}
	if res.EmptyLinesRemoved != 2 {
		t.Fatalf("EmptyLinesRemoved = %d, want 2", res.EmptyLinesRemoved)
	}
	if res.CommentsRemoved != 1 {
		t.Fatalf("CommentsRemoved = %d, want 1", res.CommentsRemoved)
	}
	if !res.BaseEntriesAdded {
		t.Fatal("BaseEntriesAdded = false, want true")
	}
	if !res.SortApplied {
		t.Fatal("SortApplied = false, want true")
	}
}

func TestCleanDefaultsPreserveLayout(t *testing.T) {
	t.Parallel()

	text := "# comment\n\nnode_modules/\ndist/\nnode_modules/\nbuild/\n\nbuild/\n"

	res := Clean(text, DefaultOptions(), nil)
	equalLines(t, res.Lines, []string{
		".DS_Store", "# comment", "", "node_modules/", "dist/", "build/", "",
	})

	if res.EmptyLinesRemoved != 0 || res.CommentsRemoved != 0 {
		t.Fatalf("removed blanks/comments under default policy: %+v", res)
	}
	if res.SortApplied {
		t.Fatal("SortApplied = true under default policy")
	}
}

func TestCleanIdempotent(t *testing.T) {
	t.Parallel()

	text := "# comment\n\nnode_modules/\ndist/\nnode_modules/\nbuild/\n"
	opts := Options{
		BaseEntries:             []string{".DS_Store"},
		TrailingSlashForFolders: true,
		RemoveEmptyLines:        true,
		RemoveComments:          true,
		Sort:                    true,
	}

	first := Clean(text, opts, nil)
	second := Clean(SerializeLines(first.Lines), opts, nil)

	equalLines(t, second.Lines, first.Lines)
	if second.Changed() {
		t.Fatalf("second pass reported changes: %+v", second)
	}
}

func TestCleanFirstOccurrenceWins(t *testing.T) {
	t.Parallel()

	// Anchoring of the surviving line follows the first occurrence.
	text := "/vendor\nvendor\ncache\n/cache\n"
	res := Clean(text, Options{}, nil)

	equalLines(t, res.Lines, []string{"/vendor", "cache"})
	if res.DuplicatesRemoved != 2 {
		t.Fatalf("DuplicatesRemoved = %d, want 2", res.DuplicatesRemoved)
	}
}

func TestCleanPreservesPatterns(t *testing.T) {
	t.Parallel()

	text := "*.log\n!important.log\n**/cache/*\n*.log\n"
	res := Clean(text, Options{}, nil)

	equalLines(t, res.Lines, []string{"*.log", "!important.log", "**/cache/*"})
	if res.DuplicatesRemoved != 1 {
		t.Fatalf("DuplicatesRemoved = %d, want 1", res.DuplicatesRemoved)
	}
}

// The non-counting of pure slash-policy divergences is intentional: the
// surviving lines are identical either way, only the reported summary
// differs. Do not "fix" the zero.
func TestCleanSlashPolicyDuplicateCounting(t *testing.T) {
	t.Parallel()

	text := "/node_modules\n/node_modules/\n"

	off := Clean(text, Options{TrailingSlashForFolders: false}, nil)
	equalLines(t, off.Lines, []string{"/node_modules"})
	if off.DuplicatesRemoved != 0 {
		t.Fatalf("policy off: DuplicatesRemoved = %d, want 0", off.DuplicatesRemoved)
	}

	on := Clean(text, Options{TrailingSlashForFolders: true}, nil)
	equalLines(t, on.Lines, []string{"/node_modules/"})
	if on.DuplicatesRemoved != 1 {
		t.Fatalf("policy on: DuplicatesRemoved = %d, want 1", on.DuplicatesRemoved)
	}
}

func TestCleanProbeDrivesFolderFormat(t *testing.T) {
	t.Parallel()

	probe := fakeProbe{
		"dist":     PathDirectory,
		"link":     PathSymlink,
		"notes.md": PathFile,
	}
	text := "dist\nlink/\nnotes.md/\n"

	res := Clean(text, Options{TrailingSlashForFolders: true}, probe)

	// The probed directory gains a slash; the symlink and the file lose
	// theirs no matter what the original lines said.
	equalLines(t, res.Lines, []string{"dist/", "link", "notes.md"})
}

func TestCleanUnknownTypeFallsBackToSyntax(t *testing.T) {
	t.Parallel()

	// Nothing resolvable on disk: folder-ness comes from the observed
	// trailing-slash syntax, on any variant of the key.
	text := "gone\ngone/\n"
	res := Clean(text, Options{TrailingSlashForFolders: true}, fakeProbe{})

	equalLines(t, res.Lines, []string{"gone/"})
}

func TestCleanRootDotfileStaysUnanchored(t *testing.T) {
	t.Parallel()

	probe := fakeProbe{
		".env":    PathFile,
		".vscode": PathDirectory,
	}
	text := "/.env\n/.vscode/\n"

	res := Clean(text, Options{TrailingSlashForFolders: true}, probe)

	// Root dotfiles are written unanchored; dot-directories keep their
	// anchoring and folder slash.
	equalLines(t, res.Lines, []string{".env", "/.vscode/"})
}

func TestCleanCollapsesBlankRuns(t *testing.T) {
	t.Parallel()

	// With blank removal off, runs are left exactly as written.
	keep := Clean("a\n\n\nb\n\n", Options{}, nil)
	equalLines(t, keep.Lines, []string{"a", "", "", "b", ""})

	strip := Clean("a\n\n\nb\n\n", Options{RemoveEmptyLines: true}, nil)
	equalLines(t, strip.Lines, []string{"a", "b"})
	if strip.EmptyLinesRemoved != 3 {
		t.Fatalf("EmptyLinesRemoved = %d, want 3", strip.EmptyLinesRemoved)
	}
}

func TestCleanSortLeavesBlanksInPlace(t *testing.T) {
	t.Parallel()

	// With blank removal off, sorting must not float blank lines to the
	// top of the file.
	res := Clean("b\n\na\n", Options{Sort: true}, nil)
	equalLines(t, res.Lines, []string{"a", "", "b"})
	if !res.SortApplied {
		t.Fatal("SortApplied = false, want true")
	}
}

func TestCleanDropsSlashOnlyLiterals(t *testing.T) {
	t.Parallel()

	// Lines of nothing but slashes have no key and never survive as
	// accidental blank lines.
	res := Clean("/\n//\na\n", Options{}, nil)
	equalLines(t, res.Lines, []string{"a"})
	if res.DuplicatesRemoved != 0 {
		t.Fatalf("DuplicatesRemoved = %d, want 0", res.DuplicatesRemoved)
	}
}

func TestCleanTrimsWhitespace(t *testing.T) {
	t.Parallel()

	res := Clean("  node_modules  \n\t# comment\t\n", Options{}, nil)
	equalLines(t, res.Lines, []string{"node_modules", "# comment"})
}

func TestCleanEmptyInput(t *testing.T) {
	t.Parallel()

	res := Clean("", Options{}, nil)
	if len(res.Lines) != 0 {
		t.Fatalf("Lines = %q, want empty", res.Lines)
	}
	if SerializeLines(res.Lines) != "" {
		t.Fatal("empty input must serialize to empty output")
	}

	seeded := Clean("", Options{BaseEntries: []string{".DS_Store"}}, nil)
	equalLines(t, seeded.Lines, []string{".DS_Store"})
	if !seeded.BaseEntriesAdded {
		t.Fatal("BaseEntriesAdded = false, want true")
	}
}
