package cmd

import (
	"github.com/spf13/cobra"

	"github.com/adminkit/extmake/internal/config"
	"github.com/adminkit/extmake/internal/output"
	"github.com/adminkit/extmake/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			output.Fprint(c.OutOrStdout(), version.GetInfo().String()+"\n")
			return nil
		},
	}
}
