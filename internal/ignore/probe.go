package ignore

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// PathType is what a workspace-relative path currently is on disk.
type PathType uint8

const (
	// PathUnknown means the type could not be determined.
	PathUnknown PathType = iota
	// PathDirectory is a real directory.
	PathDirectory
	// PathFile is a regular file.
	PathFile
	// PathSymlink is a symbolic link, regardless of what it points to.
	PathSymlink
	// PathNotFound means the path does not currently exist.
	PathNotFound
)

// Prober reports the current type of a workspace-relative path. A missing
// path must yield PathNotFound, not an error.
type Prober interface {
	PathType(rel string) (PathType, error)
}

// probeWorkers bounds concurrent probe calls during batch resolution.
const probeWorkers = 8

// resolveTypes probes every key once, concurrently. Probe errors degrade to
// PathNotFound so a failed lookup never aborts a cleaning pass. The result
// map is complete before any caller renders a line.
func resolveTypes(keys []string, probe Prober) map[string]PathType {
	types := make(map[string]PathType, len(keys))
	if probe == nil {
		for _, k := range keys {
			types[k] = PathUnknown
		}
		return types
	}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(probeWorkers)

	for _, key := range keys {
		g.Go(func() error {
			pt, err := probe.PathType(key)
			if err != nil {
				pt = PathNotFound
			}
			mu.Lock()
			types[key] = pt
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()
	return types
}
