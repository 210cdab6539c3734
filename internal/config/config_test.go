package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// TestLoadModuleConfig_JSON tests loading a JSON module configuration.
func TestLoadModuleConfig_JSON(t *testing.T) {
	path := writeConfigFile(t, "module.json", `{
  "generation": {
    "files": {"remove": ["src/App.css", "public/vite.svg"]}
  },
  "dependencies": {
    "npm": {
      "dependencies": {"tailwindcss": "^3.4.0"},
      "devDependencies": {"prettier": "^3.0.0"}
    }
  }
}`)

	cfg, err := LoadModuleConfig(path)
	if err != nil {
		t.Fatalf("LoadModuleConfig failed: %v", err)
	}

	remove := cfg.RemovalList()
	if len(remove) != 2 || remove[0] != "src/App.css" {
		t.Errorf("RemovalList() = %v", remove)
	}
	if cfg.Dependencies.NPM == nil {
		t.Fatal("npm dependency group missing")
	}
	if cfg.Dependencies.NPM.Dependencies["tailwindcss"] != "^3.4.0" {
		t.Errorf("dependencies = %v", cfg.Dependencies.NPM.Dependencies)
	}
	if cfg.Dependencies.NPM.DevDependencies["prettier"] != "^3.0.0" {
		t.Errorf("devDependencies = %v", cfg.Dependencies.NPM.DevDependencies)
	}
}

// TestLoadModuleConfig_YAML tests loading a YAML module configuration.
func TestLoadModuleConfig_YAML(t *testing.T) {
	path := writeConfigFile(t, "module.yaml", `generation:
  baseTemplate:
    config:
      template: react
  files:
    remove:
      - src/App.css
dependencies:
  npm:
    dependencies:
      clsx: ^2.1.0
`)

	cfg, err := LoadModuleConfig(path)
	if err != nil {
		t.Fatalf("LoadModuleConfig failed: %v", err)
	}

	if got := cfg.TemplateOverride(); got != "react" {
		t.Errorf("TemplateOverride() = %q, want %q", got, "react")
	}
	if remove := cfg.RemovalList(); len(remove) != 1 || remove[0] != "src/App.css" {
		t.Errorf("RemovalList() = %v", remove)
	}
	if cfg.Dependencies.NPM == nil || cfg.Dependencies.NPM.Dependencies["clsx"] != "^2.1.0" {
		t.Errorf("npm dependencies not loaded: %+v", cfg.Dependencies.NPM)
	}
}

// TestLoadModuleConfig_Errors tests missing and malformed files.
func TestLoadModuleConfig_Errors(t *testing.T) {
	_, err := LoadModuleConfig(filepath.Join(t.TempDir(), "missing.json"))
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Type != ConfigNotFound {
		t.Errorf("missing file: err = %v, want ConfigNotFound", err)
	}

	path := writeConfigFile(t, "bad.json", `{not json`)
	_, err = LoadModuleConfig(path)
	if !errors.As(err, &cfgErr) || cfgErr.Type != ConfigInvalid {
		t.Errorf("malformed file: err = %v, want ConfigInvalid", err)
	}
}

// TestSaveLoadRoundTrip tests that a saved configuration loads back equal.
func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := &ModuleConfig{
		Generation: GenerationConfig{
			Files: &FilesConfig{Remove: []string{"src/App.css"}},
		},
	}

	for _, name := range []string{"module.json", "module.yaml"} {
		path := filepath.Join(t.TempDir(), name)
		if err := SaveModuleConfig(path, cfg); err != nil {
			t.Fatalf("SaveModuleConfig(%s) failed: %v", name, err)
		}
		loaded, err := LoadModuleConfig(path)
		if err != nil {
			t.Fatalf("LoadModuleConfig(%s) failed: %v", name, err)
		}
		if got := loaded.RemovalList(); len(got) != 1 || got[0] != "src/App.css" {
			t.Errorf("%s: RemovalList() = %v", name, got)
		}
	}
}

// TestTypeScriptEnabled tests the TypeScript default.
func TestTypeScriptEnabled(t *testing.T) {
	enabled := true
	disabled := false

	tests := []struct {
		name     string
		value    *bool
		expected bool
	}{
		{"default is enabled", nil, true},
		{"explicit true", &enabled, true},
		{"explicit false", &disabled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FieldValues{UseTypeScript: tt.value}
			if got := f.TypeScriptEnabled(); got != tt.expected {
				t.Errorf("TypeScriptEnabled() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestValidateRunContext tests boundary validation.
func TestValidateRunContext(t *testing.T) {
	tests := []struct {
		name      string
		project   string
		buildTool string
		wantErr   bool
	}{
		{"valid", "my-app", "", false},
		{"valid with vite", "my-app", "vite", false},
		{"empty name", "", "", true},
		{"name with slash", "a/b", "", true},
		{"name with backslash", `a\b`, "", true},
		{"name with dotdot", "..", "", true},
		{"name with leading dash", "-app", "", true},
		{"unsupported build tool", "my-app", "webpack", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := RunContext{
				Project: ProjectContext{Name: tt.project},
				Module: ModuleContext{
					FieldValues: FieldValues{BuildTool: tt.buildTool},
				},
			}
			err := ValidateRunContext(rc)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRunContext() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestLoadSettings_Defaults tests default settings without file or env.
func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings(t.TempDir())
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.NpmBin != "npm" || s.NpxBin != "npx" {
		t.Errorf("binaries = %q/%q, want npm/npx", s.NpmBin, s.NpxBin)
	}
	if s.GeneratorPackage != "create-vite@latest" {
		t.Errorf("GeneratorPackage = %q", s.GeneratorPackage)
	}
	if s.SkipInstall {
		t.Error("SkipInstall should default to false")
	}
}

// TestLoadSettings_Env tests that CODE_REACT_* environment variables win.
func TestLoadSettings_Env(t *testing.T) {
	t.Setenv("CODE_REACT_SKIP_INSTALL", "true")
	t.Setenv("CODE_REACT_NPM_BIN", "pnpm")

	s, err := LoadSettings(t.TempDir())
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if !s.SkipInstall {
		t.Error("SkipInstall should be true from environment")
	}
	if s.NpmBin != "pnpm" {
		t.Errorf("NpmBin = %q, want pnpm", s.NpmBin)
	}
}

// TestLoadSettings_File tests reading a code-react settings file.
func TestLoadSettings_File(t *testing.T) {
	dir := t.TempDir()
	content := `{"generator_package": "create-vite@5.5.0"}`
	if err := os.WriteFile(filepath.Join(dir, "code-react.json"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}

	s, err := LoadSettings(dir)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.GeneratorPackage != "create-vite@5.5.0" {
		t.Errorf("GeneratorPackage = %q, want pinned version from file", s.GeneratorPackage)
	}
	if s.NpmBin != "npm" {
		t.Errorf("NpmBin = %q, want default npm", s.NpmBin)
	}
}
