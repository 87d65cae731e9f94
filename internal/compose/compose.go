// Package compose builds the conditional fragments that are substituted into
// stubs as single placeholder values.
package compose

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/adminkit/extmake/internal/config"
)

// authorSeparator joins author objects in the manifest.
const authorSeparator = ",\n"

// menuStanza is the commented menu property added to the provider.
const menuStanza = `
    //protected $menu = [];
`

// jsAssets declares the default front-end script of a standard extension.
const jsAssets = `
    protected $js = [
        'js/index.js',
    ];

`

// themeType marks the provider as a theme.
const themeType = `protected $type = self::TYPE_THEME;
`

// themeRegistration registers the theme stylesheets as base assets.
const themeRegistration = `Admin::baseCss($this->formatAssetFiles($this->css));`

// Authors renders authors as JSON object literals joined by ",\n".
// name and email are always present; homepage and role only when set.
func Authors(authors []config.Author) string {
	parts := make([]string, 0, len(authors))
	for _, a := range authors {
		var b strings.Builder
		b.WriteString(`{"name": `)
		b.WriteString(Quote(a.Name))
		b.WriteString(`, "email": `)
		b.WriteString(Quote(a.Email))
		if a.Homepage != "" {
			b.WriteString(`, "homepage": `)
			b.WriteString(Quote(a.Homepage))
		}
		if a.Role != "" {
			b.WriteString(`, "role": `)
			b.WriteString(Quote(a.Role))
		}
		b.WriteString("}")
		parts = append(parts, b.String())
	}
	return strings.Join(parts, authorSeparator)
}

// Keywords renders keywords as double-quoted strings joined by ", ".
func Keywords(keywords []string) string {
	parts := make([]string, 0, len(keywords))
	for _, k := range keywords {
		parts = append(parts, Quote(k))
	}
	return strings.Join(parts, ", ")
}

// Menu returns the commented menu property when enabled.
func Menu(enabled bool) string {
	if !enabled {
		return ""
	}
	return menuStanza
}

// ProviderBody returns the property block of the service provider.
// Theme providers only declare their type; standard providers get the
// optional menu stanza and the default script assets.
func ProviderBody(theme, menu bool) string {
	if theme {
		return themeType
	}
	return Menu(menu) + jsAssets
}

// ThemeRegistration returns the statement registering theme stylesheets,
// or an empty string in standard mode.
func ThemeRegistration(theme bool) string {
	if !theme {
		return ""
	}
	return themeRegistration
}

// Quote returns s as a JSON string literal without HTML escaping.
func Quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return `""`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// Escape returns s escaped for use inside an existing JSON string literal.
func Escape(s string) string {
	q := Quote(s)
	return q[1 : len(q)-1]
}
