// Package plan decides which directories and files make up a new extension.
//
// A Plan is pure data: it names stubs and destinations and carries the
// placeholder bindings of each rendered file. Nothing here touches the
// filesystem; see package materialize for that.
package plan

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/adminkit/extmake/internal/compose"
	"github.com/adminkit/extmake/internal/config"
	oerrors "github.com/adminkit/extmake/internal/errors"
	"github.com/adminkit/extmake/internal/naming"
	"github.com/adminkit/extmake/internal/stub"
)

// Mode selects the kind of extension being generated.
type Mode int

const (
	// ModeStandard generates a regular extension with controller, view and routes.
	ModeStandard Mode = iota
	// ModeTheme generates a theme extension.
	ModeTheme
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeTheme {
		return "theme"
	}
	return "standard"
}

// Kind is the action taken for an entry.
type Kind int

const (
	// KindCopy copies a stub verbatim and never overwrites.
	KindCopy Kind = iota
	// KindRender renders a stub through the placeholder engine and always writes.
	KindRender
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindRender {
		return "render"
	}
	return "copy"
}

// DefaultVersion is used when the configured version is empty.
const DefaultVersion = "1.0.0"

// LogoDest is where the configured logo stub is copied.
const LogoDest = "logo.png"

// themeDirs are created for theme extensions instead of the configured dirs.
var themeDirs = []string{
	"updates",
	"resources/assets/css",
	"resources/views",
	"src",
}

// themeExcludedStubs are never copied in theme mode.
var themeExcludedStubs = []string{"view.stub", "js.stub"}

// Entry is a single file of the plan.
type Entry struct {
	Kind Kind

	// Stub is the stub file name, e.g. "provider.stub".
	Stub string

	// Dest is the slash separated path relative to the extension root.
	Dest string

	// Bindings are the placeholder values of a render entry.
	Bindings stub.Bindings
}

// Plan is the ordered set of directories and files for one extension.
type Plan struct {
	// Package is the vendor/name path below the storage root.
	Package string

	Mode Mode

	// Dirs are created before any file, in order.
	Dirs []string

	// Entries are the copy entries followed by the render entries.
	Entries []Entry
}

// Copies returns the copy entries in plan order.
func (p *Plan) Copies() []Entry {
	return p.filter(KindCopy)
}

// Renders returns the render entries in plan order.
func (p *Plan) Renders() []Entry {
	return p.filter(KindRender)
}

// Lookup returns the entry with the given destination.
func (p *Plan) Lookup(dest string) (Entry, bool) {
	for _, e := range p.Entries {
		if e.Dest == dest {
			return e, true
		}
	}
	return Entry{}, false
}

func (p *Plan) filter(kind Kind) []Entry {
	var out []Entry
	for _, e := range p.Entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Request is the input of Build.
type Request struct {
	Identity naming.Identity
	Mode     Mode
	Defaults config.ExtensionDefaults
}

// Build computes the plan for req. The configured defaults are read only.
func Build(req Request) (*Plan, error) {
	id := req.Identity
	if id.Package == "" || id.ClassName == "" {
		return nil, oerrors.NewInvalidIdentifierError(id.Package)
	}

	theme := req.Mode == ModeTheme

	dirs, err := buildDirs(req.Defaults, theme)
	if err != nil {
		return nil, err
	}

	copies, err := buildCopies(req.Defaults, theme)
	if err != nil {
		return nil, err
	}

	p := &Plan{
		Package: id.Package,
		Mode:    req.Mode,
		Dirs:    dirs,
	}
	p.Entries = append(p.Entries, copies...)
	p.Entries = append(p.Entries, buildRenders(id, req.Defaults, theme)...)
	return p, nil
}

func buildDirs(d config.ExtensionDefaults, theme bool) ([]string, error) {
	var src []string
	if theme {
		src = themeDirs
	} else {
		src = make([]string, 0, len(d.Dirs)+2)
		src = append(src, d.Dirs...)
		if d.Config {
			src = append(src, "config")
		}
		if d.Facade {
			src = append(src, "src/Facades")
		}
	}

	seen := make(map[string]bool, len(src))
	dirs := make([]string, 0, len(src))
	for _, dir := range src {
		clean, err := cleanDest(dir)
		if err != nil {
			return nil, err
		}
		if seen[clean] {
			continue
		}
		seen[clean] = true
		dirs = append(dirs, clean)
	}
	return dirs, nil
}

func buildCopies(d config.ExtensionDefaults, theme bool) ([]Entry, error) {
	files := make(map[string]string, len(d.Files))
	for name, dest := range d.Files {
		if dest == "" {
			continue
		}
		files[stub.Path(name)] = dest
	}
	if theme {
		for _, name := range themeExcludedStubs {
			delete(files, name)
		}
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names)+1)
	for _, name := range names {
		dest, err := cleanDest(files[name])
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Kind: KindCopy, Stub: name, Dest: dest})
	}

	if d.Logo != "" {
		entries = append(entries, Entry{Kind: KindCopy, Stub: stub.Path(d.Logo), Dest: LogoDest})
	}
	return entries, nil
}

func buildRenders(id naming.Identity, d config.ExtensionDefaults, theme bool) []Entry {
	version := d.Version
	if version == "" {
		version = DefaultVersion
	}

	ns := id.Namespace
	cls := id.ClassName

	entries := []Entry{
		render("composer.json", "composer.json", stub.Bindings{
			"{package}":     compose.Escape(id.Package),
			"{alias}":       "",
			"{namespace}":   manifestNamespace(ns),
			"{className}":   cls,
			"{description}": compose.Escape(d.Description),
			"{version}":     compose.Escape(version),
			"{license}":     compose.Escape(d.License),
			"{type}":        compose.Escape(d.Type),
			"{keywords}":    compose.Keywords(d.Keywords),
			"{authors}":     compose.Authors(d.Authors),
		}),
		render("setting", "src/Setting.php", stub.Bindings{
			"{namespace}": ns,
		}),
	}

	if d.Facade {
		entries = append(entries, render("facade", "src/Facades/"+cls+".php", stub.Bindings{
			"{namespace}":  ns,
			"{className}":  cls,
			"{facadeName}": id.Slug,
		}))
	}

	if d.Config {
		entries = append(entries, render("config", "config/"+id.Slug+".php", stub.Bindings{
			"{config_default}": d.ConfigDefault,
		}))
	}

	entries = append(entries,
		render("base_class", "src/"+cls+".php", stub.Bindings{
			"{namespace}": ns,
			"{className}": cls,
		}),
		render("provider", "src/"+cls+"ServiceProvider.php", stub.Bindings{
			"{namespace}":     ns,
			"{className}":     cls,
			"{title}":         cases.Title(language.Und).String(cls),
			"{path}":          id.Slug,
			"{basePackage}":   id.Slug,
			"{property}":      compose.ProviderBody(theme, d.Menu),
			"{registerTheme}": compose.ThemeRegistration(theme),
		}),
	)

	if theme {
		return entries
	}

	return append(entries,
		render("controller", "src/Http/Controllers/"+cls+"Controller.php", stub.Bindings{
			"{namespace}": ns,
			"{className}": cls,
			"{name}":      id.DisplayName,
		}),
		render("view", "resources/views/index.blade.php", stub.Bindings{
			"{name}": id.DisplayName,
		}),
		render("routes", "routes/admin.php", stub.Bindings{
			"{namespace}": ns,
			"{className}": cls,
			"{path}":      id.Slug,
		}),
	)
}

func render(name, dest string, b stub.Bindings) Entry {
	return Entry{Kind: KindRender, Stub: stub.Path(name), Dest: dest, Bindings: b}
}

// manifestNamespace formats a namespace as a PSR-4 key inside a JSON string:
// backslashes doubled and a trailing escaped separator.
func manifestNamespace(ns string) string {
	return strings.ReplaceAll(ns, `\`, `\\`) + `\\`
}

// cleanDest validates and normalizes a destination relative to the extension root.
func cleanDest(dest string) (string, error) {
	if !config.IsRelativePath(dest) {
		return "", oerrors.Wrap(oerrors.ErrValidation, fmt.Sprintf("destination %q must stay inside the extension directory", dest))
	}
	return path.Clean(strings.ReplaceAll(dest, `\`, "/")), nil
}
