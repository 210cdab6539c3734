// Package manifest merges declared dependency groups into a generated
// project's package.json before the tree is captured.
package manifest

import (
	"encoding/json"
	"os"

	"github.com/genesis3lib/code-react/internal/debug"
	"github.com/genesis3lib/code-react/internal/events"
)

const manifestComponent = "manifest"

// NPMDependencies holds npm dependency declarations keyed by package name.
type NPMDependencies struct {
	// Dependencies are runtime dependencies (name -> version range).
	Dependencies map[string]string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	// DevDependencies are development-only dependencies.
	DevDependencies map[string]string `json:"devDependencies,omitempty" yaml:"devDependencies,omitempty"`
}

// DependencyGroups groups dependency declarations by ecosystem. Only npm
// is currently supported.
type DependencyGroups struct {
	// NPM are the npm dependency groups to merge into package.json.
	NPM *NPMDependencies `json:"npm,omitempty" yaml:"npm,omitempty"`
}

// MergeDependencies merges groups into the JSON manifest at path and
// rewrites it in place with two-space indentation.
//
// The merge is a shallow overwrite per key: incoming packages replace any
// same-named entry in the manifest's dependencies/devDependencies objects,
// entries not mentioned are preserved. A missing manifest file skips the
// merge with a diagnostic on sink; a manifest that exists but is not valid
// JSON is fatal and nothing is written.
func MergeDependencies(path string, groups DependencyGroups, sink events.Sink) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			events.Warn(sink, manifestComponent, "manifest not found, skipping dependency merge: %s", path)
			return nil
		}
		return NewManifestError(ManifestReadFailed, path, "failed to read manifest", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return NewManifestError(ManifestParseFailed, path, "invalid JSON syntax", err)
	}

	if groups.NPM != nil {
		merged := mergeGroup(doc, "dependencies", groups.NPM.Dependencies)
		merged += mergeGroup(doc, "devDependencies", groups.NPM.DevDependencies)
		debug.Debug("[manifest] Merged %d dependency entries into %s", merged, path)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return NewManifestError(ManifestWriteFailed, path, "failed to marshal manifest", err)
	}
	out = append(out, '\n')

	// Write through a temporary sibling so a failure never leaves a
	// half-written manifest.
	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, out, 0644); err != nil {
		return NewManifestError(ManifestWriteFailed, path, "failed to write manifest", err)
	}
	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return NewManifestError(ManifestWriteFailed, path, "failed to replace manifest", err)
	}

	return nil
}

// mergeGroup overwrites entries of the named top-level object with the
// incoming packages, creating the object if absent. Returns the number of
// entries merged.
func mergeGroup(doc map[string]interface{}, key string, incoming map[string]string) int {
	if len(incoming) == 0 {
		return 0
	}

	group, ok := doc[key].(map[string]interface{})
	if !ok {
		group = map[string]interface{}{}
	}
	for name, version := range incoming {
		group[name] = version
	}
	doc[key] = group

	return len(incoming)
}
