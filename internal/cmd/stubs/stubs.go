// Package stubs provides the stubs command group.
package stubs

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/adminkit/extmake/internal/config"
	oerrors "github.com/adminkit/extmake/internal/errors"
	"github.com/adminkit/extmake/internal/output"
	"github.com/adminkit/extmake/internal/stub"
)

// NewStubsCmd creates the stubs command group.
func NewStubsCmd(cfg *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "stubs",
		Short: "Manage the stubs extensions are generated from",
		Long: `Manage stub files.

Point extension.stubs (env: EXTMAKE_STUBS) at a directory to override
individual built-in stubs; files missing there fall back to the built-ins.`,
	}

	c.AddCommand(newPublishCmd(afero.NewOsFs()))
	c.AddCommand(newListCmd(cfg, afero.NewOsFs()))

	return c
}

func newPublishCmd(fs afero.Fs) *cobra.Command {
	var forceFlag bool

	c := &cobra.Command{
		Use:   "publish <dir>",
		Short: "Copy the built-in stubs into a directory for customization",
		Long: `Copy the built-in stubs into a directory for customization.

Existing files are kept unless --force is given.

Examples:
  extmake stubs publish ./stubs
  EXTMAKE_STUBS=./stubs extmake make acme/blog`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			dir, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("expanding %s: %w", args[0], err)
			}

			res, err := stub.Publish(fs, dir, forceFlag)
			if err != nil {
				return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
			}

			w := c.OutOrStdout()
			for _, name := range res.Written {
				output.Fprint(w, output.FormatFileLine(name, output.StatusCreated)+"\n")
			}
			for _, name := range res.Skipped {
				output.Fprint(w, output.FormatFileLine(name, output.StatusSkipped)+"\n")
			}
			output.Fprint(w, output.FormatCheckmark(fmt.Sprintf("Published %d stubs to %s", len(res.Written), dir))+"\n")
			return nil
		},
	}

	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing stub files")

	return c
}

func newListCmd(cfg *config.GlobalConfig, fs afero.Fs) *cobra.Command {
	var outputFlag string

	c := &cobra.Command{
		Use:   "list",
		Short: "List stubs and where each is read from",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			format := output.ParseOutputFormat(outputFlag)
			if !format.IsValid() {
				return &oerrors.ExitError{
					Code: oerrors.ExitValidationError,
					Err: &oerrors.DetailError{
						Type:    "validation failed",
						Message: fmt.Sprintf("unknown output format: %s", outputFlag),
						Hint:    fmt.Sprintf("Valid formats: %s", strings.Join(output.ValidFormats(), ", ")),
						Cause:   oerrors.ErrValidation,
					},
				}
			}

			origins, err := stubOrigins(cfg, fs)
			if err != nil {
				return err
			}

			w := c.OutOrStdout()
			switch format {
			case output.FormatJSON:
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(origins)
			case output.FormatTable:
				output.Fprint(w, output.RenderStubTable(origins)+"\n")
			default:
				paths := make(map[string]string, len(origins))
				for _, o := range origins {
					paths[o.Name] = o.Source
				}
				output.Fprint(w, output.RenderFileTree("stubs", paths))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&outputFlag, "output", "o", "tree",
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return c
}

// stubOrigins reports for every built-in stub whether the configured
// override directory shadows it.
func stubOrigins(cfg *config.GlobalConfig, fs afero.Fs) ([]output.StubOrigin, error) {
	names, err := stub.Names()
	if err != nil {
		return nil, err
	}

	dir := ""
	if cfg.Config != nil {
		dir, err = config.ExpandPath(cfg.Config.Extension.Stubs)
		if err != nil {
			return nil, fmt.Errorf("expanding stubs directory: %w", err)
		}
	}

	origins := make([]output.StubOrigin, 0, len(names))
	for _, name := range names {
		o := output.StubOrigin{Name: name, Source: "built-in"}
		if dir != "" {
			p := filepath.Join(dir, name)
			if ok, err := afero.Exists(fs, p); err == nil && ok {
				o.Source = "override"
				o.Path = p
			}
		}
		origins = append(origins, o)
	}
	return origins, nil
}
