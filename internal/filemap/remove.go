package filemap

import (
	"github.com/genesis3lib/code-react/internal/debug"
	"github.com/genesis3lib/code-react/internal/events"
)

const removeComponent = "remove"

// Remove deletes each listed path from m by exact key match, mutating m in
// place, and returns the paths that were actually present. A listed path
// that is absent is reported on sink and skipped; it is not an error. An
// empty or nil list is a no-op. Remove is idempotent.
func Remove(m FileMap, paths []string, sink events.Sink) []string {
	if len(paths) == 0 {
		return nil
	}

	var removed []string
	for _, p := range paths {
		if _, ok := m[p]; !ok {
			events.Warn(sink, removeComponent, "path listed for removal not found: %s", p)
			continue
		}
		delete(m, p)
		removed = append(removed, p)
		debug.Debug("[remove] Removed %s", p)
	}

	return removed
}
