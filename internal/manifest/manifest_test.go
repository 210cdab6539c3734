package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genesis3lib/code-react/internal/events"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readManifest(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestMergeDependencies_UnionIncomingWins(t *testing.T) {
	path := writeManifest(t, `{
  "name": "app",
  "dependencies": {
    "b": "2.0.0",
    "react": "^18.2.0"
  }
}`)

	groups := DependencyGroups{
		NPM: &NPMDependencies{
			Dependencies: map[string]string{
				"a":     "1.0.0",
				"react": "^19.0.0",
			},
		},
	}

	require.NoError(t, MergeDependencies(path, groups, nil))

	doc := readManifest(t, path)
	deps := doc["dependencies"].(map[string]interface{})
	assert.Equal(t, "1.0.0", deps["a"], "incoming key should be added")
	assert.Equal(t, "2.0.0", deps["b"], "untouched key should be preserved")
	assert.Equal(t, "^19.0.0", deps["react"], "incoming key should win on collision")
	assert.Equal(t, "app", doc["name"], "unrelated manifest fields should be preserved")
}

func TestMergeDependencies_DevDependencies(t *testing.T) {
	path := writeManifest(t, `{"devDependencies": {"vite": "^5.0.0"}}`)

	groups := DependencyGroups{
		NPM: &NPMDependencies{
			DevDependencies: map[string]string{"tailwindcss": "^3.4.0"},
		},
	}

	require.NoError(t, MergeDependencies(path, groups, nil))

	doc := readManifest(t, path)
	devDeps := doc["devDependencies"].(map[string]interface{})
	assert.Equal(t, "^5.0.0", devDeps["vite"])
	assert.Equal(t, "^3.4.0", devDeps["tailwindcss"])
}

func TestMergeDependencies_CreatesAbsentGroup(t *testing.T) {
	path := writeManifest(t, `{"name": "app"}`)

	groups := DependencyGroups{
		NPM: &NPMDependencies{
			Dependencies: map[string]string{"clsx": "^2.1.0"},
		},
	}

	require.NoError(t, MergeDependencies(path, groups, nil))

	doc := readManifest(t, path)
	deps := doc["dependencies"].(map[string]interface{})
	assert.Equal(t, "^2.1.0", deps["clsx"])
}

func TestMergeDependencies_MissingManifestSkips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	rec := &events.Recorder{}

	groups := DependencyGroups{
		NPM: &NPMDependencies{Dependencies: map[string]string{"a": "1.0.0"}},
	}

	require.NoError(t, MergeDependencies(path, groups, rec))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "skipped merge must not create the manifest")
	require.Len(t, rec.Warnings(), 1)
	assert.Contains(t, rec.Warnings()[0].Message, "package.json")
}

func TestMergeDependencies_MalformedManifestFatal(t *testing.T) {
	original := `{"name": "app", INVALID`
	path := writeManifest(t, original)

	groups := DependencyGroups{
		NPM: &NPMDependencies{Dependencies: map[string]string{"a": "1.0.0"}},
	}

	err := MergeDependencies(path, groups, nil)
	require.Error(t, err)

	var mErr *ManifestError
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, ManifestParseFailed, mErr.Type)

	// No partial write: the file is byte-identical and no temp file remains.
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, original, string(data))
	_, statErr := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(statErr))
}

func TestMergeDependencies_StableFormatting(t *testing.T) {
	path := writeManifest(t, `{"name":"app","dependencies":{"react":"^18.2.0"}}`)

	require.NoError(t, MergeDependencies(path, DependencyGroups{
		NPM: &NPMDependencies{Dependencies: map[string]string{"clsx": "^2.1.0"}},
	}, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasSuffix(text, "\n"), "manifest should end with a newline")
	assert.Contains(t, text, "  \"dependencies\"", "manifest should be two-space indented")
}
