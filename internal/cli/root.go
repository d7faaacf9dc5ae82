package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lintkit/create-eslint-config/internal/branding"
	"github.com/lintkit/create-eslint-config/internal/config"
	"github.com/lintkit/create-eslint-config/internal/interactive"
	"github.com/lintkit/create-eslint-config/internal/ui"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` sets up ESLint for a JavaScript or TypeScript project.

Run it in a directory that has a package.json. It asks which style guide to
follow, writes .eslintrc.cjs and .editorconfig, and adds the required
devDependencies to package.json. Running the root command is the same as
running "init".`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := config.Load(); err != nil {
			ui.Warnf(cmd.ErrOrStderr(), "%v (using defaults)", err)
		}
	},
	RunE: runInitCmd,
}

func init() {
	addInitFlags(rootCmd)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	switch {
	case err == nil:
	case errors.Is(err, interactive.ErrAborted):
		ui.Cancelled(os.Stderr)
	default:
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.Styles.Error.Render("Error:"), err)
	}
	return err
}
