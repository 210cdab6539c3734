package filemap

import (
	"github.com/zeebo/xxh3"
)

// Digest returns a content digest over the whole map: paths, encodings and
// contents in sorted path order. Two maps with the same entries always
// digest to the same value regardless of insertion order, so callers can
// use the digest for change detection across scaffold runs.
func (m FileMap) Digest() uint64 {
	h := xxh3.New()
	for _, p := range m.Paths() {
		entry := m[p]
		_, _ = h.WriteString(p)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(string(entry.Encoding))
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(entry.Content)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
