package ignore

import "strings"

// renderLine produces the single canonical form of a literal entry from its
// key, its resolved folder-ness, the first-seen formatting variant and the
// active options.
func renderLine(key string, isFolder bool, first variant, opts Options) string {
	// Degenerate case: a key that is itself pattern syntax stays untouched.
	if key == "" || isPattern(key) {
		return key
	}

	// Root-level dotfiles are conventionally written unanchored.
	if isRootDotfile(key, isFolder) {
		return key
	}

	line := key
	if first.anchored {
		line = "/" + line
	}

	// Files and symlinks never carry a trailing slash, whatever the
	// original line said.
	if isFolder && (opts.TrailingSlashForFolders || first.trailingSlash) {
		line += "/"
	}

	return line
}

// isRootDotfile reports whether key names a non-directory dotfile directly at
// the workspace root.
func isRootDotfile(key string, isFolder bool) bool {
	return !isFolder && strings.HasPrefix(key, ".") && !strings.Contains(key, "/")
}
