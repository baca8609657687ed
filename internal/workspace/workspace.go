package workspace

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/patrick-levesque/gitignore-assistant/internal/ignore"
	"github.com/patrick-levesque/gitignore-assistant/internal/util"
)

// Workspace is a local directory tree rooted at Root.
type Workspace struct {
	Root string
}

// FindRoot walks upward from dir looking for a .git entry and returns the
// containing directory. When no repository marker is found, dir itself is
// the workspace.
func FindRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Join(errors.New("failed to resolve directory"), err)
	}

	wd := abs
	for {
		if util.Exists(filepath.Join(wd, ".git")) {
			return wd, nil
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			break
		}
		wd = parent
	}

	return abs, nil
}

// PathType reports what rel currently is on disk, without following
// symbolic links. Missing paths are PathNotFound, not an error.
func (w *Workspace) PathType(rel string) (ignore.PathType, error) {
	fi, err := os.Lstat(filepath.Join(w.Root, filepath.FromSlash(rel)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ignore.PathNotFound, nil
		}
		return ignore.PathUnknown, err
	}

	switch {
	case fi.Mode()&fs.ModeSymlink != 0:
		return ignore.PathSymlink, nil
	case fi.IsDir():
		return ignore.PathDirectory, nil
	default:
		return ignore.PathFile, nil
	}
}

// Rel converts a user-supplied path (absolute or cwd-relative) to
// workspace-relative slash form. Paths outside the workspace are rejected.
func (w *Workspace) Rel(p string) (string, error) {
	if !filepath.IsAbs(p) {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		p = filepath.Join(wd, p)
	}

	rel, err := filepath.Rel(w.Root, p)
	if err != nil {
		return "", ignore.ErrOutsideWorkspace
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", ignore.ErrOutsideWorkspace
	}

	return rel, nil
}

// TopEntries lists the workspace's top-level entry names, directories
// suffixed with "/", sorted, with the .git directory elided. Feed for the
// interactive add picker.
func (w *Workspace) TopEntries() ([]string, error) {
	entries, err := os.ReadDir(w.Root)
	if err != nil {
		return nil, errors.Join(errors.New("failed to read workspace root"), err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Name() == ".git" {
			continue
		}
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}
