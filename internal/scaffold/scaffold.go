// Package scaffold generates a new extension from a resolved identity and the
// configured defaults.
package scaffold

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/adminkit/extmake/internal/config"
	"github.com/adminkit/extmake/internal/materialize"
	"github.com/adminkit/extmake/internal/naming"
	"github.com/adminkit/extmake/internal/output"
	"github.com/adminkit/extmake/internal/plan"
	"github.com/adminkit/extmake/internal/stub"
)

// Request describes one extension to generate.
type Request struct {
	Identity naming.Identity
	Mode     plan.Mode
	Defaults config.ExtensionDefaults

	// StorageRoot is the directory holding all extensions.
	StorageRoot string
}

// Result is returned by Generate.
type Result struct {
	*materialize.Result

	Identity naming.Identity
	Plan     *plan.Plan
}

// Descriptions maps every created path, relative to the extension root, to a
// short label. Directories carry a trailing slash.
func (r *Result) Descriptions() map[string]string {
	out := make(map[string]string, len(r.Dirs)+len(r.Copied)+len(r.Skipped)+len(r.Missing)+len(r.Written))
	for _, d := range r.Dirs {
		out[d+"/"] = ""
	}
	for _, f := range r.Copied {
		out[f] = "copied"
	}
	for _, f := range r.Skipped {
		out[f] = "skipped"
	}
	for _, f := range r.Missing {
		out[f] = "stub missing"
	}
	for _, f := range r.Written {
		out[f] = describe(f, r.Identity)
	}
	return out
}

func describe(dest string, id naming.Identity) string {
	switch dest {
	case "composer.json":
		return "package manifest"
	case "src/" + id.ClassName + "ServiceProvider.php":
		return "service provider"
	case "src/" + id.ClassName + ".php":
		return "extension class"
	case "src/Setting.php":
		return "settings form"
	case "routes/admin.php":
		return "admin routes"
	default:
		return "rendered"
	}
}

// Generator builds plans and writes them through a materializer.
type Generator struct {
	fs    afero.Fs
	stubs *stub.Source
}

// NewGenerator creates a generator writing to fs with stubs read from src.
func NewGenerator(fs afero.Fs, src *stub.Source) *Generator {
	return &Generator{fs: fs, stubs: src}
}

// Generate creates the extension described by req.
func (g *Generator) Generate(req Request) (*Result, error) {
	p, err := plan.Build(plan.Request{
		Identity: req.Identity,
		Mode:     req.Mode,
		Defaults: req.Defaults,
	})
	if err != nil {
		return nil, fmt.Errorf("planning %s: %w", req.Identity.Package, err)
	}

	output.Debug("generating extension",
		"package", req.Identity.Package,
		"namespace", req.Identity.Namespace,
		"mode", req.Mode,
		"root", req.StorageRoot,
		"stubs", g.stubs.Override(),
		"dirs", len(p.Dirs),
		"entries", len(p.Entries))

	res, err := materialize.New(g.fs, g.stubs).Materialize(req.StorageRoot, p)
	if err != nil {
		return nil, err
	}

	return &Result{Result: res, Identity: req.Identity, Plan: p}, nil
}
