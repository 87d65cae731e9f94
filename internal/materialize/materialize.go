// Package materialize writes a plan to disk.
package materialize

import (
	"path"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"

	oerrors "github.com/adminkit/extmake/internal/errors"
	"github.com/adminkit/extmake/internal/output"
	"github.com/adminkit/extmake/internal/plan"
	"github.com/adminkit/extmake/internal/stub"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// manifestDest is validated as JSON after rendering.
const manifestDest = "composer.json"

// Result describes what was done on disk. All paths are relative to Root.
type Result struct {
	// Root is the extension directory.
	Root string

	Dirs   []string
	Copied []string

	// Skipped are copy destinations that already existed.
	Skipped []string

	// Missing are copy destinations whose stub was not found.
	Missing []string

	Written []string
}

// Materializer writes plans onto a filesystem using a stub source.
type Materializer struct {
	fs    afero.Fs
	stubs *stub.Source
}

// New creates a Materializer.
func New(fs afero.Fs, stubs *stub.Source) *Materializer {
	return &Materializer{fs: fs, stubs: stubs}
}

type copyStatus int

const (
	copied copyStatus = iota
	destExists
	stubMissing
)

type rendered struct {
	dest string
	data []byte
}

// Materialize creates the extension described by p below storageRoot.
//
// It refuses to touch an existing extension directory. Render stubs are all
// rendered before anything is written, so a missing render stub leaves the
// filesystem untouched. Copy entries never overwrite; rendered files always do.
func (m *Materializer) Materialize(storageRoot string, p *plan.Plan) (*Result, error) {
	if err := m.fs.MkdirAll(storageRoot, dirMode); err != nil {
		return nil, oerrors.WrapFilesystem(err, "creating storage root "+storageRoot)
	}

	root := filepath.Join(storageRoot, filepath.FromSlash(p.Package))
	exists, err := afero.DirExists(m.fs, root)
	if err != nil {
		return nil, oerrors.WrapFilesystem(err, "checking "+root)
	}
	if exists {
		return nil, oerrors.NewAlreadyExistsError(p.Package, root)
	}

	renders, err := m.renderAll(p)
	if err != nil {
		return nil, err
	}

	log := output.ExtensionLogger(p.Package)
	res := &Result{Root: root}

	for _, dir := range p.Dirs {
		if err := m.fs.MkdirAll(m.join(root, dir), dirMode); err != nil {
			return res, oerrors.WrapFilesystem(err, "creating directory "+dir)
		}
		res.Dirs = append(res.Dirs, dir)
	}

	for _, e := range p.Copies() {
		status, err := m.copy(root, e)
		if err != nil {
			return res, err
		}
		switch status {
		case copied:
			log.Debug("copied", "stub", e.Stub, "dest", e.Dest)
			res.Copied = append(res.Copied, e.Dest)
		case destExists:
			res.Skipped = append(res.Skipped, e.Dest)
		case stubMissing:
			res.Missing = append(res.Missing, e.Dest)
		}
	}

	for _, r := range renders {
		if err := m.write(root, r.dest, r.data); err != nil {
			return res, err
		}
		log.Debug("rendered", "dest", r.dest)
		res.Written = append(res.Written, r.dest)
	}

	return res, nil
}

func (m *Materializer) renderAll(p *plan.Plan) ([]rendered, error) {
	entries := p.Renders()
	out := make([]rendered, 0, len(entries))
	for _, e := range entries {
		text, err := m.stubs.Read(e.Stub)
		if err != nil {
			return nil, err
		}
		data := stub.Render(text, e.Bindings)
		if e.Dest == manifestDest && !gjson.Valid(data) {
			output.Warn("rendered manifest is not valid JSON", "package", p.Package, "stub", e.Stub)
		}
		out = append(out, rendered{dest: e.Dest, data: []byte(data)})
	}
	return out, nil
}

// copy copies a stub unless the destination exists or the stub is missing.
func (m *Materializer) copy(root string, e plan.Entry) (copyStatus, error) {
	dest := m.join(root, e.Dest)
	exists, err := afero.Exists(m.fs, dest)
	if err != nil {
		return 0, oerrors.WrapFilesystem(err, "checking "+e.Dest)
	}
	if exists {
		return destExists, nil
	}

	if !m.stubs.Exists(e.Stub) {
		output.Warn("stub not found, skipping", "stub", e.Stub, "dest", e.Dest)
		return stubMissing, nil
	}

	data, err := m.stubs.ReadBytes(e.Stub)
	if err != nil {
		return 0, err
	}
	if err := m.write(root, e.Dest, data); err != nil {
		return 0, err
	}
	return copied, nil
}

func (m *Materializer) write(root, rel string, data []byte) error {
	dest := m.join(root, rel)
	if err := m.fs.MkdirAll(filepath.Dir(dest), dirMode); err != nil {
		return oerrors.WrapFilesystem(err, "creating directory for "+rel)
	}
	if err := afero.WriteFile(m.fs, dest, data, fileMode); err != nil {
		return oerrors.WrapFilesystem(err, "writing "+rel)
	}
	return nil
}

func (m *Materializer) join(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(path.Clean(rel)))
}
