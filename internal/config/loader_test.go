package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("returns defaults for missing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("loads config from file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		content := `
extension:
  dir: /srv/extensions
  stubs: /srv/stubs
  default:
    description: Blog tools
    license: Apache-2.0
    version: 2.1.0
    facade: true
    keywords: [cms, admin]
    authors:
      - name: Jane
        email: jane@example.com
        role: maintainer
    dirs: [src, routes]
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)
		require.NoError(t, err)

		ext := cfg.Extension
		assert.Equal(t, "/srv/extensions", ext.Dir)
		assert.Equal(t, "/srv/stubs", ext.Stubs)
		assert.Equal(t, "Blog tools", ext.Default.Description)
		assert.Equal(t, "Apache-2.0", ext.Default.License)
		assert.Equal(t, "2.1.0", ext.Default.Version)
		assert.True(t, ext.Default.Facade)
		assert.False(t, ext.Default.Config)
		assert.True(t, ext.Default.Menu, "unset keys keep their default")
		assert.Equal(t, "library", ext.Default.Type)
		assert.Equal(t, []string{"cms", "admin"}, ext.Default.Keywords)
		assert.Equal(t, []Author{{Name: "Jane", Email: "jane@example.com", Role: "maintainer"}}, ext.Default.Authors)
		assert.Equal(t, []string{"src", "routes"}, ext.Default.Dirs)
	})

	t.Run("file entries merge over default files", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		content := `
extension:
  default:
    files:
      readme.stub: ""
      license.stub: LICENSE
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)
		require.NoError(t, err)

		files := cfg.Extension.Default.Files
		assert.Equal(t, "LICENSE", files["license.stub"])
		assert.Equal(t, "", files["readme.stub"])
		assert.Equal(t, "resources/views/index.blade.php", files["view.stub"])
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("EXTMAKE_EXTENSION_DIR", "/env/extensions")
		t.Setenv("EXTMAKE_VERSION", "3.0.0")

		configFile := filepath.Join(t.TempDir(), "config.yaml")
		content := "extension:\n  dir: /file/extensions\n"
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)
		require.NoError(t, err)

		assert.Equal(t, "/env/extensions", cfg.Extension.Dir)
		assert.Equal(t, "3.0.0", cfg.Extension.Default.Version)
	})

	t.Run("loads jsonc config", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.jsonc")
		content := `{
  // storage root
  "extension": {
    "dir": "/jsonc/extensions",
    "default": {
      "config": true, /* emit config/<slug>.php */
      "menu": false
    }
  }
}`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)
		require.NoError(t, err)

		assert.Equal(t, "/jsonc/extensions", cfg.Extension.Dir)
		assert.True(t, cfg.Extension.Default.Config)
		assert.False(t, cfg.Extension.Default.Menu)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("extension: [unclosed"), 0o644))

		_, err := NewLoader().Load(configFile)
		assert.Error(t, err)
	})
}

func TestConfigFileExists(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(existing, []byte(""), 0o644))

	ok, err := ConfigFileExists(existing)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ConfigFileExists(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, ok)
}
