package filemap

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/genesis3lib/code-react/internal/debug"
	"github.com/genesis3lib/code-react/internal/events"
)

const snapshotComponent = "snapshot"

// Snapshot recursively reads the directory tree rooted at root into a
// FileMap keyed by slash-separated paths relative to root.
//
// A root that does not exist yields an empty FileMap, not an error: the
// caller may be capturing a directory an external tool was merely expected
// to create. Individual files or subdirectories that cannot be read are
// skipped with a warning on sink; the capture is best-effort and never
// fails because of one unreadable entry.
func Snapshot(root string, sink events.Sink) (FileMap, error) {
	fm := FileMap{}

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			debug.Debug("[snapshot] Root does not exist, returning empty map: %s", root)
			return fm, nil
		}
		return nil, fmt.Errorf("failed to stat snapshot root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("snapshot root is not a directory: %s", root)
	}

	debug.Debug("[snapshot] Capturing tree: %s", root)
	walkInto(root, "", fm, sink)
	debug.Debug("[snapshot] Captured %d files from %s", len(fm), root)

	return fm, nil
}

// walkInto reads one directory level into the shared accumulator. The
// accumulator is passed down instead of merging per-subtree maps so large
// trees are not repeatedly copied.
func walkInto(dir, rel string, acc FileMap, sink events.Sink) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		events.Warn(sink, snapshotComponent, "skipping unreadable directory %s: %v", dir, err)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		abs := filepath.Join(dir, name)
		key := path.Join(rel, name)

		if entry.IsDir() {
			walkInto(abs, key, acc, sink)
			continue
		}
		if !entry.Type().IsRegular() {
			// Symlinks, sockets and the like are not files to capture.
			debug.Debug("[snapshot] Skipping irregular entry: %s", key)
			continue
		}

		data, err := os.ReadFile(abs)
		if err != nil {
			events.Warn(sink, snapshotComponent, "skipping unreadable file %s: %v", key, err)
			continue
		}
		acc[key] = NewEntry(key, data)
	}
}
