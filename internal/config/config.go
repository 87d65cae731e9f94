// Package config provides configuration loading and management.
package config

// Author is an entry of the generated manifest's authors list.
type Author struct {
	// Name is the author name (required).
	Name string `mapstructure:"name" yaml:"name" validate:"required"`

	// Email is the author email address.
	Email string `mapstructure:"email" yaml:"email" validate:"omitempty,email"`

	// Homepage is emitted only when set.
	Homepage string `mapstructure:"homepage" yaml:"homepage,omitempty" validate:"omitempty,url"`

	// Role is emitted only when set.
	Role string `mapstructure:"role" yaml:"role,omitempty"`
}

// ExtensionDefaults holds the values copied into every generated extension.
type ExtensionDefaults struct {
	// Description is the manifest description.
	Description string `mapstructure:"description" yaml:"description"`

	// License is the manifest license identifier.
	License string `mapstructure:"license" yaml:"license"`

	// Type is the manifest package type.
	Type string `mapstructure:"type" yaml:"type"`

	// Keywords are the manifest keywords.
	Keywords []string `mapstructure:"keywords" yaml:"keywords" validate:"dive,required"`

	// Authors are the manifest authors.
	Authors []Author `mapstructure:"authors" yaml:"authors" validate:"dive"`

	// Version is the initial extension version, a semantic version. Empty
	// falls back to 1.0.0.
	Version string `mapstructure:"version" yaml:"version"`

	// Logo is the stub copied to logo.png. Empty disables the logo.
	Logo string `mapstructure:"logo" yaml:"logo"`

	// Facade enables src/Facades/<Class>.php.
	Facade bool `mapstructure:"facade" yaml:"facade"`

	// Config enables config/<slug>.php.
	Config bool `mapstructure:"config" yaml:"config"`

	// ConfigDefault is the body of the generated config array.
	ConfigDefault string `mapstructure:"config_default" yaml:"config_default"`

	// Menu adds a commented menu property to the service provider.
	Menu bool `mapstructure:"menu" yaml:"menu"`

	// Dirs are created in standard mode.
	Dirs []string `mapstructure:"dirs" yaml:"dirs"`

	// Files maps a stub name to its destination inside the extension.
	// An empty destination disables the entry.
	Files map[string]string `mapstructure:"files" yaml:"files"`
}

// ExtensionConfig contains extension generation settings.
type ExtensionConfig struct {
	// Dir is the extension storage root. Env: EXTMAKE_EXTENSION_DIR
	Dir string `mapstructure:"dir" yaml:"dir" validate:"required"`

	// Stubs is an optional directory whose stubs shadow the built-in ones. Env: EXTMAKE_STUBS
	Stubs string `mapstructure:"stubs" yaml:"stubs,omitempty"`

	// Default holds the values used for every new extension.
	Default ExtensionDefaults `mapstructure:"default" yaml:"default"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the extmake configuration file.
type Config struct {
	// Extension contains generation settings.
	Extension ExtensionConfig `mapstructure:"extension" yaml:"extension"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// GlobalConfig is the state shared by all commands after the root pre-run.
type GlobalConfig struct {
	// Config is the loaded configuration, defaults applied.
	Config *Config

	// ConfigPath is the resolved configuration file path.
	ConfigPath string

	// Verbose is the --verbose flag.
	Verbose bool
}

// DefaultConfig returns a Config with all default values populated.
// Used by `extmake config init` and as the base layer of the loader.
func DefaultConfig() *Config {
	return &Config{
		Extension: ExtensionConfig{
			Dir: "dcat-admin-extensions",
			Default: ExtensionDefaults{
				Description: "Description...",
				License:     "MIT",
				Type:        "library",
				Keywords:    []string{"dcat-admin", "extension"},
				Authors: []Author{
					{Name: "Your Name", Email: "you@example.com"},
				},
				Version:       "1.0.0",
				Logo:          "logo.png",
				Facade:        false,
				Config:        false,
				ConfigDefault: "    //",
				Menu:          true,
				Dirs: []string{
					"updates",
					"resources/assets/css",
					"resources/assets/js",
					"resources/views",
					"resources/lang",
					"src/Http/Controllers",
					"src/Models",
					"database/migrations",
					"routes",
				},
				Files: map[string]string{
					"view.stub":      "resources/views/index.blade.php",
					"js.stub":        "resources/assets/js/index.js",
					"css.stub":       "resources/assets/css/index.css",
					"gitignore.stub": ".gitignore",
					"readme.stub":    "README.md",
					"version.stub":   "version.php",
				},
			},
		},
	}
}
