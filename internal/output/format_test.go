package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputFormatValid(t *testing.T) {
	tests := []struct {
		format OutputFormat
		valid  bool
	}{
		{FormatTree, true},
		{FormatTable, true},
		{FormatJSON, true},
		{OutputFormat("yaml"), false},
		{OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.IsValid())
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected OutputFormat
	}{
		{"", FormatTree},
		{"tree", FormatTree},
		{"TABLE", FormatTable},
		{" json ", FormatJSON},
		{"xml", OutputFormat("xml")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseOutputFormat(tt.input))
		})
	}
}

func TestValidFormats(t *testing.T) {
	assert.Equal(t, []string{"tree", "table", "json"}, ValidFormats())
}

func TestRenderStubTable(t *testing.T) {
	out := RenderStubTable([]StubOrigin{
		{Name: "provider.stub", Source: "override", Path: "/custom/provider.stub"},
		{Name: "view.stub", Source: "built-in"},
	})

	assert.Contains(t, out, "STUB")
	assert.Contains(t, out, "provider.stub")
	assert.Contains(t, out, "/custom/provider.stub")
	assert.Contains(t, out, "built-in")
}
