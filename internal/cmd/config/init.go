package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/adminkit/extmake/internal/config"
	oerrors "github.com/adminkit/extmake/internal/errors"
	"github.com/adminkit/extmake/internal/output"
)

const configHeader = "# extmake configuration\n# Values under extension.default are copied into every generated extension.\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *config.GlobalConfig) *cobra.Command {
	var forceFlag bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with default values",
		Long: `Create the extmake configuration file with default values.

The file is written to the resolved config path:
  --config flag > EXTMAKE_CONFIG env > ~/.extmake/config.yaml

Examples:
  # Initialize configuration
  extmake config init

  # Overwrite existing configuration
  extmake config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, forceFlag)
		},
	}

	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, cfg *config.GlobalConfig, force bool) error {
	path, err := configPath(cfg)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return oerrors.WrapFilesystem(err, "checking config file")
	}

	if exists && !force {
		return &oerrors.ExitError{
			Code: oerrors.ExitAlreadyExists,
			Err: &oerrors.DetailError{
				Type:     "config exists",
				Message:  "configuration already exists",
				Location: path,
				Hint:     "Use --force to overwrite existing configuration.",
				Cause:    oerrors.ErrAlreadyExists,
			},
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return oerrors.WrapFilesystem(err, "creating config directory")
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return oerrors.WrapFilesystem(err, "writing config file")
	}

	output.Fprint(c.OutOrStdout(), output.FormatCheckmark("Config file created: "+path)+"\n")
	return nil
}
