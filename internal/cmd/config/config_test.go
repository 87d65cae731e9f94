package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminkit/extmake/internal/config"
	oerrors "github.com/adminkit/extmake/internal/errors"
)

func run(t *testing.T, cfg *config.GlobalConfig, args ...string) (string, error) {
	t.Helper()
	c := NewConfigCmd(cfg)
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestNewConfigCmd(t *testing.T) {
	c := NewConfigCmd(&config.GlobalConfig{})

	assert.Equal(t, "config", c.Use)
	names := make([]string, 0, len(c.Commands()))
	for _, sub := range c.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"init", "vet"}, names)
}

func TestConfigInit_WritesLoadableDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &config.GlobalConfig{ConfigPath: path}

	out, err := run(t, cfg, "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	loaded, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Extension.Default.Files, loaded.Extension.Default.Files)
	assert.Equal(t, "1.0.0", loaded.Extension.Default.Version)
	require.NoError(t, config.Validate(loaded))
}

func TestConfigInit_ExistingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extension:\n  dir: x\n"), 0o644))
	cfg := &config.GlobalConfig{ConfigPath: path}

	_, err := run(t, cfg, "init")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitAlreadyExists, oerrors.ExitCodeFromError(err))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "extension:\n  dir: x\n", string(data))

	_, err = run(t, cfg, "init", "--force")
	require.NoError(t, err)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dcat-admin-extensions")
}

func TestConfigVet(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, &config.GlobalConfig{ConfigPath: filepath.Join(dir, "none.yaml")}, "vet")
		require.Error(t, err)
		assert.Equal(t, oerrors.ExitGeneralError, oerrors.ExitCodeFromError(err))
		assert.Contains(t, err.Error(), "config init")
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "valid.yaml")
		_, err := run(t, &config.GlobalConfig{ConfigPath: path}, "init")
		require.NoError(t, err)

		out, err := run(t, &config.GlobalConfig{ConfigPath: path}, "vet")
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration is valid")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		content := `extension:
  default:
    version: not-a-version
    authors:
      - name: A
        email: not-an-email
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := run(t, &config.GlobalConfig{ConfigPath: path}, "vet")
		require.Error(t, err)
		assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
		assert.Contains(t, err.Error(), "extension.default.version")
		assert.Contains(t, err.Error(), "extension.default.authors[0].email")
	})

	t.Run("jsonc file", func(t *testing.T) {
		path := filepath.Join(dir, "extmake.jsonc")
		content := `{
  // storage root
  "extension": {"dir": "exts", "default": {"license": "Apache-2.0"}}
}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		out, err := run(t, &config.GlobalConfig{ConfigPath: path}, "vet")
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration is valid")
	})
}
