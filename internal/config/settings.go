package config

import (
	"github.com/spf13/viper"

	"github.com/genesis3lib/code-react/internal/debug"
)

// Settings are tool-level settings controlling which external binaries
// the scaffolder invokes and whether provisioning runs. They come from an
// optional code-react config file, overridden by CODE_REACT_* environment
// variables.
type Settings struct {
	// NpmBin is the npm executable used for package installation.
	NpmBin string `mapstructure:"npm_bin"`
	// NpxBin is the npx executable used for one-shot tool invocations.
	NpxBin string `mapstructure:"npx_bin"`
	// GeneratorPackage is the scaffolding generator package spec.
	GeneratorPackage string `mapstructure:"generator_package"`
	// UIInitPackage is the UI component library initializer package spec.
	UIInitPackage string `mapstructure:"ui_init_package"`
	// SkipInstall skips the install and UI-init provisioning steps
	// (fast/test mode). Environment: CODE_REACT_SKIP_INSTALL.
	SkipInstall bool `mapstructure:"skip_install"`
}

// DefaultSettings returns settings with all defaults applied.
func DefaultSettings() *Settings {
	return &Settings{
		NpmBin:           "npm",
		NpxBin:           "npx",
		GeneratorPackage: "create-vite@latest",
		UIInitPackage:    "shadcn@latest",
		SkipInstall:      false,
	}
}

// LoadSettings initializes tool settings from defaults, an optional
// code-react.{json,yaml} file in cwd, and CODE_REACT_* environment
// variables (highest precedence).
func LoadSettings(cwd string) (*Settings, error) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("npm_bin", defaults.NpmBin)
	v.SetDefault("npx_bin", defaults.NpxBin)
	v.SetDefault("generator_package", defaults.GeneratorPackage)
	v.SetDefault("ui_init_package", defaults.UIInitPackage)
	v.SetDefault("skip_install", defaults.SkipInstall)

	// Explicitly bind environment variables to config keys.
	_ = v.BindEnv("npm_bin", "CODE_REACT_NPM_BIN")
	_ = v.BindEnv("npx_bin", "CODE_REACT_NPX_BIN")
	_ = v.BindEnv("generator_package", "CODE_REACT_GENERATOR_PACKAGE")
	_ = v.BindEnv("ui_init_package", "CODE_REACT_UI_INIT_PACKAGE")
	_ = v.BindEnv("skip_install", "CODE_REACT_SKIP_INSTALL")

	v.SetConfigName("code-react")
	if cwd != "" {
		v.AddConfigPath(cwd)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, NewConfigErrorWithCause(ConfigInvalid, v.ConfigFileUsed(), "failed to read settings file", err)
		}
		debug.Debug("[config] No settings file found, using defaults and environment")
	} else {
		debug.Debug("[config] Loaded settings file: %s", v.ConfigFileUsed())
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, v.ConfigFileUsed(), "failed to decode settings", err)
	}

	debug.DebugJSON("[config] Effective settings", s)
	return &s, nil
}
