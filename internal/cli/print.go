package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lintkit/create-eslint-config/internal/compose"
	"github.com/lintkit/create-eslint-config/internal/object"
	"github.com/lintkit/create-eslint-config/internal/ui"
)

var (
	printSel  selection
	printJSON bool
)

func init() {
	addSelectionFlags(printCmd, &printSel)
	printCmd.Flags().BoolVar(&printJSON, "json", false, "Output the bundle as JSON")
	rootCmd.AddCommand(printCmd)
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the configuration without touching the project",
	Long: `Compose a configuration from --preset or --style-guide and print the files
and the devDependencies fragment to stdout. Without either flag the
configured default style guide is used. Nothing is written to disk.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sel := printSel
		sel.typeScriptSet = cmd.Flags().Changed("typescript")
		return runPrint(sel, printJSON, cmd.OutOrStdout())
	},
}

// bundle is the machine-readable form of a composition.
type bundle struct {
	Combination     string            `json:"combination"`
	DevDependencies *object.Object    `json:"devDependencies"`
	Files           map[string]string `json:"files"`
}

func runPrint(sel selection, asJSON bool, out io.Writer) error {
	p, err := sel.resolve(nil)
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
		return err
	}
	deps := object.FromStrings(result.Dependencies)

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(bundle{
			Combination:     result.Combination.String(),
			DevDependencies: deps,
			Files:           result.Files,
		})
	}

	for _, name := range result.FileNames() {
		fmt.Fprintf(out, "%s\n%s\n", ui.File("// "+name), result.Files[name])
	}
	data, err := json.MarshalIndent(object.New().Set("devDependencies", deps), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dependencies: %w", err)
	}
	fmt.Fprintf(out, "%s\n%s\n", ui.File("// package.json"), data)
	return nil
}
