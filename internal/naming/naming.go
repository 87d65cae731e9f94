// Package naming resolves extension package names into the identifiers used by
// the generated code: namespace, class name, slug and display name.
package naming

import (
	"path"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	oerrors "github.com/adminkit/extmake/internal/errors"
)

// DefaultNamespaceKeyword selects the derived namespace when passed as an override.
const DefaultNamespaceKeyword = "default"

// packageNameRegex matches vendor/name with alphanumeric, dash, dot and underscore segments.
var packageNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*/[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Identity holds everything derived from a package name.
type Identity struct {
	// Package is the normalized vendor/name identifier.
	Package string

	// Vendor is the segment before the slash.
	Vendor string

	// Name is the segment after the slash.
	Name string

	// Namespace is the PHP root namespace, e.g. Acme\Blog.
	Namespace string

	// ClassName is the extension class name, e.g. BlogPost.
	ClassName string

	// Slug is the lowercase dashed basename used for config and facade names.
	Slug string

	// DisplayName is the package with "/" replaced by ".".
	DisplayName string
}

// Normalize trims the raw input and converts the dotted display form
// (vendor.name) to vendor/name when no slash is present.
func Normalize(raw string) string {
	name := strings.Trim(strings.TrimSpace(raw), "/")
	if !strings.Contains(name, "/") {
		name = strings.Replace(name, ".", "/", 1)
	}
	return name
}

// Validate checks that pkg has the vendor/name shape.
func Validate(pkg string) error {
	if !packageNameRegex.MatchString(pkg) {
		return oerrors.NewInvalidIdentifierError(pkg)
	}
	return nil
}

// Resolve validates raw and derives the extension identity. An empty namespace
// or the keyword "default" selects the namespace derived from the package name.
func Resolve(raw, namespace string) (Identity, error) {
	pkg := Normalize(raw)
	if err := Validate(pkg); err != nil {
		return Identity{}, err
	}

	vendor, name, _ := strings.Cut(pkg, "/")

	ns := strings.TrimSpace(namespace)
	if ns == "" || ns == DefaultNamespaceKeyword {
		ns = DefaultNamespace(vendor, name)
	}

	base := path.Base(pkg)

	return Identity{
		Package:     pkg,
		Vendor:      vendor,
		Name:        name,
		Namespace:   strings.Trim(ns, `\`),
		ClassName:   ClassName(base),
		Slug:        Slug(base),
		DisplayName: strings.ReplaceAll(pkg, "/", "."),
	}, nil
}

// DefaultNamespace derives Vendor\Name from the package segments.
// Segments are title cased and dashes are removed: acme-corp/blog -> AcmeCorp\Blog.
func DefaultNamespace(vendor, name string) string {
	caser := cases.Title(language.Und)
	ns := caser.String(vendor) + `\` + caser.String(name)
	return strings.ReplaceAll(ns, "-", "")
}

// ClassName converts a package basename to a studly class name: blog-post -> BlogPost.
func ClassName(base string) string {
	words := strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
	})

	var b strings.Builder
	for _, w := range words {
		b.WriteString(upperFirst(w))
	}
	return b.String()
}

// Slug converts a basename to a lowercase dashed identifier: blogPost -> blog-post.
func Slug(base string) string {
	var b strings.Builder
	for _, r := range base {
		if unicode.IsUpper(r) {
			b.WriteRune('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if r == '_' {
			b.WriteRune('-')
			continue
		}
		b.WriteRune(r)
	}
	return slug.Make(strings.TrimLeft(b.String(), "-"))
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
