package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lintkit/create-eslint-config/internal/compose"
	"github.com/lintkit/create-eslint-config/internal/config"
	"github.com/lintkit/create-eslint-config/internal/interactive"
	"github.com/lintkit/create-eslint-config/internal/pkgjson"
	"github.com/lintkit/create-eslint-config/internal/pkgmanager"
	"github.com/lintkit/create-eslint-config/internal/project"
	"github.com/lintkit/create-eslint-config/internal/ui"
)

type initOptions struct {
	dir     string
	force   bool
	verbose bool
	sel     selection

	// userAgent is the launching package manager's user agent string.
	userAgent string
}

var initOpts initOptions

func init() {
	addInitFlags(initCmd)
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an ESLint configuration for the project",
	Long: `Write .eslintrc.cjs and .editorconfig into the project directory and add
the required devDependencies to package.json.

Answers come from --preset, from --style-guide (with --typescript and
--alias), or from interactive questions when neither is given. Existing
.eslintrc.* files and an eslintConfig field in package.json are removed
after confirmation, or without asking when --force is set.`,
	Args: cobra.NoArgs,
	RunE: runInitCmd,
}

// addInitFlags binds the init flags on cmd. The root command shares them.
func addInitFlags(cmd *cobra.Command) {
	addSelectionFlags(cmd, &initOpts.sel)
	f := cmd.Flags()
	f.StringVar(&initOpts.dir, "dir", ".", "Project directory containing package.json")
	f.BoolVar(&initOpts.force, "force", false, "Remove existing ESLint configuration without asking")
	f.BoolVarP(&initOpts.verbose, "verbose", "v", false, "Print each dependency and file change")
}

func runInitCmd(cmd *cobra.Command, args []string) error {
	opts := initOpts
	opts.sel.typeScriptSet = cmd.Flags().Changed("typescript")
	opts.userAgent = os.Getenv(pkgmanager.UserAgentEnv)
	return runInit(opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func runInit(opts initOptions, in io.Reader, out, errOut io.Writer) error {
	dir, err := filepath.Abs(opts.dir)
	if err != nil {
		return fmt.Errorf("resolving project directory: %w", err)
	}

	manifest, err := pkgjson.Load(dir)
	if err != nil {
		if errors.Is(err, pkgjson.ErrNotFound) {
			fmt.Fprintf(errOut, "%s not found in %s.\n", ui.Manifest(pkgjson.FileName), dir)
		}
		return err
	}
	if manifest.Indent == "" {
		if indent, ok := config.Indent(); ok {
			manifest.Indent = indent
		}
	}

	prompter := interactive.New(in, out)

	existing, err := project.FindExistingConfigs(dir)
	if err != nil {
		return err
	}
	for _, name := range existing {
		if opts.force {
			continue
		}
		remove, err := prompter.Confirm(fmt.Sprintf(
			"Found an existing ESLint config file: %s.\nDo you want to remove the config file and continue?",
			ui.File(name)), false)
		if err != nil {
			return err
		}
		if !remove {
			return interactive.ErrAborted
		}
	}

	if manifest.HasESLintConfig() {
		remove := opts.force
		if !remove {
			remove, err = prompter.Confirm(fmt.Sprintf(
				"Found existing %s field in %s.\nDo you want to remove the config field and continue?",
				ui.File("eslintConfig"), ui.Manifest(pkgjson.FileName)), false)
			if err != nil {
				return err
			}
		}
		if remove {
			manifest.RemoveESLintConfig()
		}
	}

	var questions *interactive.Prompter
	if !opts.sel.answered() {
		questions = prompter
	}
	p, err := opts.sel.resolve(questions)
	if err != nil {
		return err
	}
	params, err := p.Params()
	if err != nil {
		return err
	}
	tables, err := compose.DefaultTables()
	if err != nil {
		return err
	}
	result, err := compose.Compose(params, tables)
	if err != nil {
		return fmt.Errorf("composing %s configuration: %w",
			compose.Combination{StyleGuide: params.StyleGuide, Language: compose.LanguageFor(params.HasTypeScript)}, err)
	}

	changes := manifest.MergeDevDependencies(result.Dependencies)
	if opts.verbose {
		for _, c := range changes {
			switch c.Kind {
			case pkgjson.Updated:
				note := ""
				if c.Satisfied {
					note = " (already satisfied)"
				}
				fmt.Fprintf(errOut, "  %-9s %s %s -> %s%s\n", c.Kind, c.Name, c.Previous, c.Next, note)
			default:
				fmt.Fprintf(errOut, "  %-9s %s %s\n", c.Kind, c.Name, c.Next)
			}
		}
	}

	if err := project.RemoveConfigs(dir, existing); err != nil {
		return err
	}
	if err := manifest.Save(); err != nil {
		return err
	}
	written, err := project.WriteFiles(dir, result.Files)
	if err != nil {
		return err
	}
	if opts.verbose {
		for _, name := range existing {
			fmt.Fprintf(errOut, "  removed   %s\n", name)
		}
		for _, path := range written {
			fmt.Fprintf(errOut, "  wrote     %s\n", path)
		}
	}

	pm := pkgmanager.Parse(config.Get(config.KeyPackageManager), opts.userAgent)
	fmt.Fprintf(out, "\n%s and %s have been updated.\n", ui.Manifest(pkgjson.FileName), ui.File(compose.ConfigFileName))
	fmt.Fprintf(out, "Now please run %s to re-install the dependencies.\n", ui.Command(pm.InstallCommand()))
	fmt.Fprintf(out, "Then you can run %s to lint your files.\n", ui.Command(pm.LintCommand()))
	return nil
}
