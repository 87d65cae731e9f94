package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"no tilde", "/absolute/path", "/absolute/path"},
		{"relative path without tilde", "relative/path", "relative/path"},
		{"tilde only", "~", homeDir},
		{"tilde with path", "~/.extmake/config.yaml", filepath.Join(homeDir, ".extmake", "config.yaml")},
		{"tilde username unsupported", "~bob/config", "~bob/config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetConfigFile(t *testing.T) {
	t.Run("env takes precedence", func(t *testing.T) {
		t.Setenv("EXTMAKE_CONFIG", "/custom/config.yaml")
		got, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, "/custom/config.yaml", got)
	})

	t.Run("default under home", func(t *testing.T) {
		t.Setenv("EXTMAKE_CONFIG", "")
		got, err := GetConfigFile()
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
		assert.Equal(t, "config.yaml", filepath.Base(got))
		assert.Equal(t, ".extmake", filepath.Base(filepath.Dir(got)))
	})
}
