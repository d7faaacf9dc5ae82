package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lintkit/create-eslint-config/internal/preset"
	"github.com/lintkit/create-eslint-config/internal/ui"
)

func init() {
	presetCmd.AddCommand(presetValidateCmd)
	rootCmd.AddCommand(presetCmd)
}

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Work with preset answer files",
	Long: `A preset answers the interactive questions ahead of time:

  styleGuide: airbnb
  typescript: false
  aliases: { "@": ./src }
  additionalConfig: { rules: { no-console: warn } }
  additionalDependencies: { eslint-plugin-cypress: ^2.13.3 }

YAML, JSON (comments allowed), and TOML files are accepted.`,
}

var presetValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a preset file against the preset schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPresetValidate(args[0], cmd.OutOrStdout())
	},
}

func runPresetValidate(path string, out io.Writer) error {
	result, err := preset.ValidateFile(path)
	if err != nil {
		return err
	}
	if result.Valid {
		ui.Successf(out, "%s is a valid preset", path)
		return nil
	}

	fmt.Fprintf(out, "%s %s has %d issue(s):\n", ui.Styles.Error.Render(ui.IconError), path, len(result.Issues))
	for _, issue := range result.Issues {
		loc := issue.Path
		if loc == "" {
			loc = "(root)"
		}
		fmt.Fprintf(out, "  %s: %s [%s]\n", loc, issue.Message, issue.Keyword)
	}
	return &preset.InvalidError{Source: path, Issues: result.Issues}
}
