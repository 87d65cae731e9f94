package stub

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/adminkit/extmake/internal/errors"
)

func TestNames(t *testing.T) {
	names, err := Names()
	require.NoError(t, err)

	for _, want := range []string{
		"base_class.stub",
		"composer.json.stub",
		"config.stub",
		"controller.stub",
		"facade.stub",
		"js.stub",
		"logo.png.stub",
		"provider.stub",
		"routes.stub",
		"setting.stub",
		"view.stub",
	} {
		assert.Contains(t, names, want)
	}
	assert.IsIncreasing(t, names)
}

func TestSource_ReadEmbedded(t *testing.T) {
	src := NewSource(nil)

	text, err := src.Read("provider")
	require.NoError(t, err)
	assert.Contains(t, text, "{className}ServiceProvider")

	text, err = src.Read("composer.json.stub")
	require.NoError(t, err)
	assert.Contains(t, text, `"name": "{package}"`)
}

func TestSource_Missing(t *testing.T) {
	src := NewSource(nil)

	_, err := src.Read("does-not-exist")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrStubMissing))
	assert.False(t, src.Exists("does-not-exist"))
}

func TestSource_OverrideShadowsEmbedded(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/custom/view.stub", []byte("custom {name}"), 0o644))
	require.NoError(t, afero.WriteFile(mem, "/custom/extra.stub", []byte("extra"), 0o644))

	src := NewSourceFromDir(mem, "/custom")
	assert.Equal(t, "/custom", src.Override())

	text, err := src.Read("view")
	require.NoError(t, err)
	assert.Equal(t, "custom {name}", text)

	text, err = src.Read("extra")
	require.NoError(t, err)
	assert.Equal(t, "extra", text)

	// Files absent from the override fall through to the embedded stubs.
	text, err = src.Read("routes")
	require.NoError(t, err)
	assert.Contains(t, text, "Route::get")
}

func TestSource_IsReadOnly(t *testing.T) {
	src := NewSourceFromDir(afero.NewMemMapFs(), "/custom")
	err := afero.WriteFile(src.fs, "view.stub", []byte("x"), 0o644)
	assert.Error(t, err)
}

func TestPublish(t *testing.T) {
	mem := afero.NewMemMapFs()
	dir := "/project/stubs"

	require.NoError(t, mem.MkdirAll(dir, 0o755))
	require.NoError(t, afero.WriteFile(mem, filepath.Join(dir, "view.stub"), []byte("mine"), 0o644))

	result, err := Publish(mem, dir, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"view.stub"}, result.Skipped)
	assert.Contains(t, result.Written, "provider.stub")

	data, err := afero.ReadFile(mem, filepath.Join(dir, "view.stub"))
	require.NoError(t, err)
	assert.Equal(t, "mine", string(data))

	result, err = Publish(mem, dir, true)
	require.NoError(t, err)
	assert.Empty(t, result.Skipped)

	data, err = afero.ReadFile(mem, filepath.Join(dir, "view.stub"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "{name}")
}
