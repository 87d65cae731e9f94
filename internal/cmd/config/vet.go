package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adminkit/extmake/internal/config"
	oerrors "github.com/adminkit/extmake/internal/errors"
	"github.com/adminkit/extmake/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the extmake configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file parses (YAML, JSON or JSONC)
  3. Values are valid: version is a semantic version, author emails are
     well formed, directories and file destinations stay inside the extension

Examples:
  # Validate default configuration
  extmake config vet

  # Validate custom config path
  extmake config vet --config ./extmake.jsonc`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *config.GlobalConfig) error {
	path, err := configPath(cfg)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	output.Debug("validating config", "path", path)

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return oerrors.WrapFilesystem(err, "checking config file")
	}
	if !exists {
		return &oerrors.ExitError{
			Code: oerrors.ExitGeneralError,
			Err: &oerrors.DetailError{
				Type:     "not found",
				Message:  "configuration file not found",
				Location: path,
				Hint:     "Run 'extmake config init' to create default configuration",
			},
		}
	}

	loaded, err := config.NewLoader().Load(path)
	if err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.Wrap(oerrors.ErrValidation, err.Error()),
		}
	}

	if err := config.Validate(loaded); err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err}
	}

	output.Fprint(c.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+path)+"\n")
	return nil
}
