package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/muhammadmuzzammil1998/jsonc"
	"github.com/spf13/viper"
)

// Environment variable prefix for extmake configuration.
const envPrefix = "EXTMAKE"

// keyDelimiter separates nested keys. Stub names such as "view.stub" are map
// keys, so the default "." delimiter cannot be used.
const keyDelimiter = "::"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader with defaults and
// environment bindings registered.
func NewLoader() *Loader {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_"))
	v.AutomaticEnv()

	_ = v.BindEnv(key("extension", "dir"), "EXTMAKE_EXTENSION_DIR")
	_ = v.BindEnv(key("extension", "stubs"), "EXTMAKE_STUBS")
	_ = v.BindEnv(key("extension", "default", "version"), "EXTMAKE_VERSION")
	_ = v.BindEnv(key("extension", "default", "license"), "EXTMAKE_LICENSE")

	setDefaults(v, DefaultConfig())

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, the default config file path is used.
// A missing file is not an error. Environment variables take precedence over
// file values, file values over built-in defaults.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	if err := l.read(expandedPath); err != nil {
		return nil, err
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// read loads the file into viper. JSONC files are converted to JSON first.
func (l *Loader) read(path string) error {
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".jsonc" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("reading config file: %w", err)
		}
		l.v.SetConfigType("json")
		if err := l.v.ReadConfig(bytes.NewReader(jsonc.ToJSON(data))); err != nil {
			return fmt.Errorf("parsing config file %s: %w", path, err)
		}
		return nil
	}

	l.v.SetConfigFile(path)
	if ext == "" {
		l.v.SetConfigType("yaml")
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func key(parts ...string) string {
	return strings.Join(parts, keyDelimiter)
}

// setDefaults registers every field of cfg as a viper default.
func setDefaults(v *viper.Viper, cfg *Config) {
	ext := cfg.Extension
	d := ext.Default

	v.SetDefault(key("extension", "dir"), ext.Dir)
	v.SetDefault(key("extension", "stubs"), ext.Stubs)

	v.SetDefault(key("extension", "default", "description"), d.Description)
	v.SetDefault(key("extension", "default", "license"), d.License)
	v.SetDefault(key("extension", "default", "type"), d.Type)
	v.SetDefault(key("extension", "default", "keywords"), d.Keywords)
	v.SetDefault(key("extension", "default", "version"), d.Version)
	v.SetDefault(key("extension", "default", "logo"), d.Logo)
	v.SetDefault(key("extension", "default", "facade"), d.Facade)
	v.SetDefault(key("extension", "default", "config"), d.Config)
	v.SetDefault(key("extension", "default", "config_default"), d.ConfigDefault)
	v.SetDefault(key("extension", "default", "menu"), d.Menu)
	v.SetDefault(key("extension", "default", "dirs"), d.Dirs)

	authors := make([]map[string]any, 0, len(d.Authors))
	for _, a := range d.Authors {
		authors = append(authors, map[string]any{"name": a.Name, "email": a.Email})
	}
	v.SetDefault(key("extension", "default", "authors"), authors)

	files := make(map[string]any, len(d.Files))
	for src, dst := range d.Files {
		files[src] = dst
	}
	v.SetDefault(key("extension", "default", "files"), files)
}
