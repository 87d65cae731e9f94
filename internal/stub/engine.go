// Package stub provides the stub source and the placeholder engine used to
// render extension files.
package stub

import (
	"sort"
	"strings"
)

// Extension is the file suffix of every stub.
const Extension = ".stub"

// Bindings maps a full placeholder token, e.g. "{namespace}", to its value.
type Bindings map[string]string

// Keys returns the placeholder tokens sorted longest first, then alphabetically.
func (b Bindings) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Render replaces every bound placeholder in text with its value.
// Replacement is a single literal pass: substituted values are never scanned
// again and placeholders without a binding are left untouched.
func Render(text string, bindings Bindings) string {
	if len(bindings) == 0 || text == "" {
		return text
	}

	keys := bindings.Keys()
	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		if k == "" {
			continue
		}
		pairs = append(pairs, k, bindings[k])
	}

	return strings.NewReplacer(pairs...).Replace(text)
}

// Path normalizes a stub name so that "view" and "view.stub" both become "view.stub".
func Path(name string) string {
	return strings.TrimSuffix(name, Extension) + Extension
}
