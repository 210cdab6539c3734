// Package filemap provides the in-memory representation of a captured
// project tree: an addressable map from relative path to file content,
// plus the operations that produce and reshape it (snapshot, remove,
// digest, materialize).
package filemap

import (
	"encoding/base64"
	"path/filepath"
	"sort"
	"strings"
)

// Encoding identifies how a FileEntry stores its content.
type Encoding string

const (
	// EncodingText stores the file bytes decoded as a UTF-8 string.
	EncodingText Encoding = "utf-8"
	// EncodingBinary stores the file bytes as a standard base64 string.
	EncodingBinary Encoding = "base64"
)

// FileEntry is one captured file.
type FileEntry struct {
	// Encoding is the content encoding (EncodingText or EncodingBinary).
	Encoding Encoding `json:"encoding" yaml:"encoding"`
	// Content is the file content in the entry's encoding.
	Content string `json:"content" yaml:"content"`
}

// FileMap maps slash-separated relative paths to captured file contents.
// It is an unordered table keyed by path; every key denotes a regular file
// that existed at snapshot time. Directories appear only implicitly as
// path prefixes.
type FileMap map[string]FileEntry

// binaryExtensions is the fixed allow-list of extensions captured as
// base64. Classification is by extension only, never by content sniffing:
// a binary asset with an unlisted extension will be captured as UTF-8 text
// and corrupted. Callers that need other formats preserved must extend the
// generated project after materializing, not rely on the capture.
var binaryExtensions = map[string]bool{
	".png":   true,
	".jpg":   true,
	".jpeg":  true,
	".gif":   true,
	".ico":   true,
	".woff":  true,
	".woff2": true,
	".ttf":   true,
	".eot":   true,
}

// IsBinaryPath reports whether a file at path is captured with
// EncodingBinary, based solely on its extension.
func IsBinaryPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return binaryExtensions[ext]
}

// NewEntry builds the FileEntry for the file at path holding data,
// classifying it per IsBinaryPath.
func NewEntry(path string, data []byte) FileEntry {
	if IsBinaryPath(path) {
		return FileEntry{
			Encoding: EncodingBinary,
			Content:  base64.StdEncoding.EncodeToString(data),
		}
	}
	return FileEntry{
		Encoding: EncodingText,
		Content:  string(data),
	}
}

// Bytes returns the entry's decoded content bytes.
func (e FileEntry) Bytes() ([]byte, error) {
	if e.Encoding == EncodingBinary {
		return base64.StdEncoding.DecodeString(e.Content)
	}
	return []byte(e.Content), nil
}

// Paths returns the map's keys in sorted order, for deterministic output
// and digesting. The map itself remains unordered.
func (m FileMap) Paths() []string {
	paths := make([]string, 0, len(m))
	for p := range m {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
