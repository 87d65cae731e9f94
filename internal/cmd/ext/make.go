// Package ext provides the extension generation command.
package ext

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/adminkit/extmake/internal/config"
	oerrors "github.com/adminkit/extmake/internal/errors"
	"github.com/adminkit/extmake/internal/naming"
	"github.com/adminkit/extmake/internal/output"
	"github.com/adminkit/extmake/internal/plan"
	"github.com/adminkit/extmake/internal/scaffold"
	"github.com/adminkit/extmake/internal/stub"
)

// makeOptions holds the flags of the make command.
type makeOptions struct {
	namespace     string
	theme         bool
	dir           string
	noInteraction bool
}

// NewMakeCmd creates the make command.
func NewMakeCmd(cfg *config.GlobalConfig) *cobra.Command {
	var opts makeOptions

	c := &cobra.Command{
		Use:   "make <vendor/name>",
		Short: "Generate a new extension",
		Long: `Generate the skeleton of a new extension below the storage root.

The package name has the form <vendor>/<name>; the dotted form vendor.name is
accepted too. An invalid name is asked for again when running interactively.

Examples:
  # Create acme/blog with the derived namespace Acme\Blog
  extmake make acme/blog --namespace default

  # Create a theme extension
  extmake make acme/dark --theme

  # Use another storage root
  extmake make acme/blog --dir ./extensions`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runMake(c, cfg, args[0], opts)
		},
	}

	c.Flags().StringVar(&opts.namespace, "namespace", "", `Root namespace of the extension ("default" derives it from the name)`)
	c.Flags().BoolVar(&opts.theme, "theme", false, "Generate a theme extension")
	c.Flags().StringVarP(&opts.dir, "dir", "d", "", "Extension storage root (env: EXTMAKE_EXTENSION_DIR)")
	c.Flags().BoolVarP(&opts.noInteraction, "no-interaction", "n", false, "Never prompt; fail on invalid input")

	return c
}

func runMake(c *cobra.Command, cfg *config.GlobalConfig, raw string, opts makeOptions) error {
	conf := cfg.Config
	if conf == nil {
		conf = config.DefaultConfig()
	}
	if err := config.Validate(conf); err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err}
	}

	prompter := output.NewPrompter(c.InOrStdin(), c.ErrOrStderr())

	pkg, err := askPackage(prompter, raw, opts.noInteraction)
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
	}

	storage := config.ResolveStorageRoot(opts.dir, conf)
	config.LogResolvedValues(storage)

	root, err := config.ExpandPath(storage.Value)
	if err != nil {
		return fmt.Errorf("expanding storage root: %w", err)
	}

	// Fail before prompting for anything else; the materializer checks again.
	osFs := afero.NewOsFs()
	target := filepath.Join(root, filepath.FromSlash(pkg))
	exists, err := afero.DirExists(osFs, target)
	if err != nil {
		return oerrors.WrapFilesystem(err, "checking "+target)
	}
	if exists {
		return &oerrors.ExitError{
			Code: oerrors.ExitAlreadyExists,
			Err:  oerrors.NewAlreadyExistsError(pkg, target),
		}
	}

	namespace := opts.namespace
	if namespace == "" && !opts.noInteraction {
		namespace, err = askNamespace(prompter, pkg)
		if err != nil {
			return err
		}
	}

	id, err := naming.Resolve(pkg, namespace)
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err}
	}

	stubDir, err := config.ExpandPath(conf.Extension.Stubs)
	if err != nil {
		return fmt.Errorf("expanding stubs directory: %w", err)
	}

	gen := scaffold.NewGenerator(osFs, stub.NewSourceFromDir(osFs, stubDir))

	mode := plan.ModeStandard
	if opts.theme {
		mode = plan.ModeTheme
	}

	var res *scaffold.Result
	err = output.RunWithSpinner(c.Context(), func() error {
		var genErr error
		res, genErr = gen.Generate(scaffold.Request{
			Identity:    id,
			Mode:        mode,
			Defaults:    conf.Extension.Default,
			StorageRoot: root,
		})
		return genErr
	}, output.WithTitle("Generating "+id.Package))
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
	}

	w := c.OutOrStdout()
	output.Fprint(w, output.FormatCheckmark("The extension scaffolding generated successfully.")+"\n\n")
	output.Fprint(w, output.RenderFileTree(filepath.ToSlash(res.Root), res.Descriptions()))
	return nil
}

// askPackage returns the normalized package name, asking again while it is
// invalid. Without interaction the first invalid name is an error.
func askPackage(p output.Prompter, raw string, noInteraction bool) (string, error) {
	pkg := naming.Normalize(raw)
	for {
		err := naming.Validate(pkg)
		if err == nil {
			return pkg, nil
		}
		if noInteraction {
			return "", err
		}

		output.Warn(fmt.Sprintf("[%s] is not a valid package name", pkg))
		answer, askErr := p.Ask("Package name, like <vendor>/<name>", "")
		if askErr != nil {
			if errors.Is(askErr, io.EOF) {
				return "", err
			}
			return "", fmt.Errorf("reading package name: %w", askErr)
		}
		pkg = naming.Normalize(answer)
	}
}

// askNamespace asks for the root namespace, offering the derived default.
// Exhausted input selects the default.
func askNamespace(p output.Prompter, pkg string) (string, error) {
	vendor, name, _ := strings.Cut(pkg, "/")
	def := naming.DefaultNamespace(vendor, name)

	answer, err := p.Ask("Root namespace", def)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return def, nil
		}
		return "", fmt.Errorf("reading namespace: %w", err)
	}
	return answer, nil
}
