package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemFs(t *testing.T) {
	fs := MemFs(t, map[string]string{
		"/a/b/c.txt": "hello",
		"/top.txt":   "top",
	})

	assert.Equal(t, "hello", ReadFile(t, fs, "/a", "b/c.txt"))
	assert.True(t, Exists(t, fs, "/", "top.txt"))
	assert.False(t, Exists(t, fs, "/", "missing.txt"))
}
