package storage

import (
	"io/fs"
	"os"
	"testing"
	"time"
)

type fakeInfo struct {
	name string
	dir  bool
}

func (f fakeInfo) Name() string       { return f.name }
func (f fakeInfo) Size() int64        { return 0 }
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return f.dir }
func (f fakeInfo) Sys() any           { return nil }

func (f fakeInfo) Mode() fs.FileMode {
	if f.dir {
		return fs.ModeDir
	}
	return 0
}

func TestEntryNames(t *testing.T) {
	t.Parallel()

	fis := []os.FileInfo{
		fakeInfo{name: "src", dir: true},
		fakeInfo{name: ".git", dir: true},
		fakeInfo{name: "README.md"},
		fakeInfo{name: "dist", dir: true},
	}

	got := entryNames(fis)

	want := []string{"README.md", "dist/", "src/"}
	if len(got) != len(want) {
		t.Fatalf("entryNames = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entryNames[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
