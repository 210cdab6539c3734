package filemap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/genesis3lib/code-react/internal/debug"
)

// WriteTo materializes the map under dir, creating parent directories as
// needed and decoding base64 entries back to raw bytes. Files are written
// atomically via a temporary file and rename so a failed write never
// leaves a truncated file behind.
func (m FileMap) WriteTo(dir string) error {
	for _, p := range m.Paths() {
		data, err := m[p].Bytes()
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", p, err)
		}
		target := filepath.Join(dir, filepath.FromSlash(p))
		if err := writeFileAtomic(target, data); err != nil {
			return err
		}
	}
	return nil
}

// writeFileAtomic writes data to path through a temporary sibling file.
func writeFileAtomic(path string, data []byte) error {
	debug.Debug("[filemap] Writing file: %s (size: %d bytes)", path, len(data))

	parent := filepath.Dir(path)
	if parent != "" && parent != "." {
		if err := os.MkdirAll(parent, 0755); err != nil {
			return fmt.Errorf("failed to create parent directory for %s: %w", path, err)
		}
	}

	tempFile := path + ".tmp"
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s: %w", path, err)
	}

	_, err = f.Write(data)
	closeErr := f.Close()

	if err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if closeErr != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to close %s: %w", path, closeErr)
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to rename temporary file to %s: %w", path, err)
	}

	return nil
}
