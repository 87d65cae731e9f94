// Package cmd provides the extmake root command.
package cmd

import (
	"github.com/spf13/cobra"

	cmdconfig "github.com/adminkit/extmake/internal/cmd/config"
	"github.com/adminkit/extmake/internal/cmd/ext"
	"github.com/adminkit/extmake/internal/cmd/stubs"
	"github.com/adminkit/extmake/internal/config"
	oerrors "github.com/adminkit/extmake/internal/errors"
	"github.com/adminkit/extmake/internal/output"
)

// NewRootCmd creates the root command for the extmake CLI.
func NewRootCmd() *cobra.Command {
	var (
		configFlag     string
		verboseFlag    bool
		timestampsFlag bool
	)

	cfg := &config.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "extmake",
		Short: "Admin extension scaffolding generator",
		Long: `extmake generates the skeleton of an admin panel extension: manifest,
service provider, settings form, controller, views, routes and assets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg, configFlag, verboseFlag, timestampsFlag)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: EXTMAKE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(
		ext.NewMakeCmd(cfg),
		cmdconfig.NewConfigCmd(cfg),
		stubs.NewStubsCmd(cfg),
		NewVersionCmd(cfg),
	)

	return rootCmd
}

// initializeGlobals resolves the config path, loads the configuration and
// sets up logging. The result is stored in cfg for the sub-commands.
func initializeGlobals(c *cobra.Command, cfg *config.GlobalConfig, configFlag string, verbose, timestamps bool) error {
	// Logging first so config loading can report at debug level.
	logCfg := output.LogConfig{Verbose: verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestamps)
	}
	output.SetupLogging(logCfg)

	configPath, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitGeneralError,
			Err:  oerrors.WrapFilesystem(err, "resolving config path"),
		}
	}

	loaded, err := config.NewLoader().Load(configPath.Value)
	if err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err: &oerrors.DetailError{
				Type:     "invalid configuration",
				Message:  err.Error(),
				Location: configPath.Value,
				Hint:     "Fix the file or run 'extmake config init --force' to recreate it.",
				Cause:    oerrors.ErrValidation,
			},
		}
	}

	cfg.Config = loaded
	cfg.ConfigPath = configPath.Value
	cfg.Verbose = verbose

	// Config may disable timestamps unless the flag was given explicitly.
	if !c.Flags().Changed("timestamps") && loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
		output.SetupLogging(logCfg)
	}

	config.LogResolvedValues(configPath)
	return nil
}
