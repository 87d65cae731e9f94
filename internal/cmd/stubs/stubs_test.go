package stubs

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminkit/extmake/internal/config"
	oerrors "github.com/adminkit/extmake/internal/errors"
	"github.com/adminkit/extmake/internal/output"
)

func TestNewStubsCmd(t *testing.T) {
	c := NewStubsCmd(&config.GlobalConfig{})

	names := make([]string, 0, len(c.Commands()))
	for _, sub := range c.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"publish", "list"}, names)
}

func TestPublish(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/stubs/view.stub", []byte("mine"), 0o644))

	c := newPublishCmd(fs)
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{"/stubs"})
	require.NoError(t, c.Execute())

	assert.Contains(t, out.String(), "provider.stub")
	assert.Contains(t, out.String(), "skipped")

	data, err := afero.ReadFile(fs, "/stubs/view.stub")
	require.NoError(t, err)
	assert.Equal(t, "mine", string(data))

	ok, err := afero.Exists(fs, "/stubs/composer.json.stub")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestList(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/custom"
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "provider.stub"), []byte("x"), 0o644))

	cfg := config.DefaultConfig()
	cfg.Extension.Stubs = dir

	c := newListCmd(&config.GlobalConfig{Config: cfg}, fs)
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{})
	require.NoError(t, c.Execute())

	assert.Contains(t, out.String(), "provider.stub")
	assert.Contains(t, out.String(), "override")
	assert.Contains(t, out.String(), "built-in")
}

func TestList_JSONAndTable(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/custom/view.stub", []byte("x"), 0o644))

	cfg := config.DefaultConfig()
	cfg.Extension.Stubs = "/custom"

	run := func(format string) (string, error) {
		c := newListCmd(&config.GlobalConfig{Config: cfg}, fs)
		var out bytes.Buffer
		c.SetOut(&out)
		c.SetErr(&bytes.Buffer{})
		c.SetArgs([]string{"--output", format})
		err := c.Execute()
		return out.String(), err
	}

	out, err := run("json")
	require.NoError(t, err)
	var origins []output.StubOrigin
	require.NoError(t, json.Unmarshal([]byte(out), &origins))
	for _, o := range origins {
		if o.Name == "view.stub" {
			assert.Equal(t, "override", o.Source)
			assert.Equal(t, filepath.Join("/custom", "view.stub"), o.Path)
		} else {
			assert.Equal(t, "built-in", o.Source, o.Name)
		}
	}

	out, err = run("table")
	require.NoError(t, err)
	assert.Contains(t, out, "SOURCE")

	_, err = run("xml")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}
