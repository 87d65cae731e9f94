package output

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("acme/blog\n\n"), &out)

	answer, err := p.Ask("Package name", "")
	require.NoError(t, err)
	assert.Equal(t, "acme/blog", answer)
	assert.Contains(t, out.String(), "Package name: ")

	answer, err = p.Ask("Root namespace", `Acme\Blog`)
	require.NoError(t, err)
	assert.Equal(t, `Acme\Blog`, answer, "empty answer selects the default")
	assert.Contains(t, out.String(), `Root namespace [Acme\Blog]: `)

	_, err = p.Ask("Again", "")
	assert.ErrorIs(t, err, io.EOF)
}
