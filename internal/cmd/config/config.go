// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/adminkit/extmake/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the extmake CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(cfg))
	c.AddCommand(NewConfigVetCmd(cfg))

	return c
}

// configPath returns the resolved config path, falling back to the default
// precedence when the root pre-run has not populated it.
func configPath(cfg *config.GlobalConfig) (string, error) {
	p := cfg.ConfigPath
	if p == "" {
		resolved, err := config.ResolveConfigPath("")
		if err != nil {
			return "", err
		}
		p = resolved.Value
	}
	return config.ExpandPath(p)
}
