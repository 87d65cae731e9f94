package stub

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"

	oerrors "github.com/adminkit/extmake/internal/errors"
)

//go:embed stubs/*
var embedded embed.FS

// embeddedRoot is the directory inside the embedded filesystem holding the stubs.
const embeddedRoot = "stubs"

// Source reads stub files. A user directory, when configured, shadows the
// embedded defaults file by file.
type Source struct {
	fs       afero.Fs
	override string
}

// EmbeddedFs returns the built-in stubs as a read-only afero filesystem.
func EmbeddedFs() afero.Fs {
	sub, err := fs.Sub(embedded, embeddedRoot)
	if err != nil {
		// embeddedRoot is fixed at compile time.
		panic(err)
	}
	return afero.NewReadOnlyFs(afero.FromIOFS{FS: sub})
}

// NewSource creates a source that reads from layer before the embedded stubs.
// A nil layer yields the embedded stubs only.
func NewSource(layer afero.Fs) *Source {
	base := EmbeddedFs()
	if layer == nil {
		return &Source{fs: base}
	}
	return &Source{fs: afero.NewReadOnlyFs(afero.NewCopyOnWriteFs(base, layer))}
}

// NewSourceFromDir layers the stub directory dir of fsys over the embedded stubs.
// An empty dir yields the embedded stubs only.
func NewSourceFromDir(fsys afero.Fs, dir string) *Source {
	if dir == "" {
		return NewSource(nil)
	}
	s := NewSource(afero.NewBasePathFs(fsys, dir))
	s.override = dir
	return s
}

// Override returns the user stub directory, if any.
func (s *Source) Override() string {
	return s.override
}

// Exists reports whether the named stub can be read.
func (s *Source) Exists(name string) bool {
	ok, err := afero.Exists(s.fs, Path(name))
	return err == nil && ok
}

// ReadBytes returns the raw contents of the named stub.
func (s *Source) ReadBytes(name string) ([]byte, error) {
	p := Path(name)
	data, err := afero.ReadFile(s.fs, p)
	if err != nil {
		return nil, oerrors.NewStubMissingError(p, err)
	}
	return data, nil
}

// Read returns the contents of the named stub as text.
func (s *Source) Read(name string) (string, error) {
	data, err := s.ReadBytes(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Names returns the built-in stub file names in sorted order.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(embedded, embeddedRoot)
	if err != nil {
		return nil, fmt.Errorf("reading embedded stubs: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		names = append(names, path.Base(e.Name()))
	}
	sort.Strings(names)
	return names, nil
}
