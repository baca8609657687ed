package ignore

import (
	"path"
	"strings"
)

// Builder computes the canonical ignore line for one workspace-relative
// target path.
type Builder struct {
	// Probe resolves path types; nil degrades every lookup to unknown.
	Probe Prober
	// RuleFile is the ignore file's own name, rejected as a target.
	RuleFile string
	// Opts are the active formatting policies.
	Opts Options
}

// Build validates the target, resolves its type and renders its canonical
// line. When an ancestor directory is a symbolic link, the shallowest such
// ancestor replaces the target: paths inside a symlinked directory are not
// addressable to the ignoring tool, the link itself is the boundary.
func (b *Builder) Build(target string) (string, error) {
	rel, err := b.KeyFor(target)
	if err != nil {
		return "", err
	}

	isDir := b.probeType(rel) == PathDirectory

	// Walk ancestors from the root down; the first symlink wins and is
	// always rendered as a file.
	segs := strings.Split(rel, "/")
	for i := 1; i < len(segs); i++ {
		anc := strings.Join(segs[:i], "/")
		if b.probeType(anc) == PathSymlink {
			rel = anc
			isDir = false
			break
		}
	}

	v := variant{anchored: b.Opts.AddWithLeadingSlash}
	return renderLine(rel, isDir, v, b.Opts), nil
}

// KeyFor validates the target and returns its canonical key, without
// ancestor substitution. Removal goes through this.
func (b *Builder) KeyFor(target string) (string, error) {
	rel, err := NormalizeTarget(target)
	if err != nil {
		return "", err
	}
	if b.RuleFile != "" && rel == b.RuleFile {
		return "", ErrTargetIsRuleFile
	}
	return rel, nil
}

// probeType is a fail-soft probe call: errors read as not found.
func (b *Builder) probeType(rel string) PathType {
	if b.Probe == nil {
		return PathUnknown
	}
	pt, err := b.Probe.PathType(rel)
	if err != nil {
		return PathNotFound
	}
	return pt
}

// NormalizeTarget reduces a target path to clean, slash-separated,
// workspace-relative form. The workspace root itself and paths escaping the
// workspace are rejected.
func NormalizeTarget(target string) (string, error) {
	t := strings.TrimSpace(target)
	t = strings.ReplaceAll(t, `\`, "/")
	t = strings.TrimPrefix(t, "./")
	t = strings.TrimLeft(t, "/")

	t = path.Clean(t)
	if t == "." || t == "" {
		return "", ErrWorkspaceRoot
	}
	if t == ".." || strings.HasPrefix(t, "../") {
		return "", ErrOutsideWorkspace
	}

	return strings.TrimSuffix(t, "/"), nil
}
