package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lintkit/create-eslint-config/internal/compose"
	"github.com/lintkit/create-eslint-config/internal/versions"
)

var matrixJSON bool

func init() {
	matrixCmd.Flags().BoolVar(&matrixJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(matrixCmd)
}

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "List supported style guide and language combinations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := versions.Default()
		if err != nil {
			return fmt.Errorf("loading version table: %w", err)
		}
		return runMatrix(table, matrixJSON, cmd.OutOrStdout())
	},
}

// matrixEntry is one combination for display.
type matrixEntry struct {
	Combination  string            `json:"combination"`
	Extends      []string          `json:"extends"`
	Dependencies map[string]string `json:"dependencies"`
}

func runMatrix(table *versions.Table, asJSON bool, out io.Writer) error {
	var entries []matrixEntry
	for _, c := range compose.Matrix() {
		entry, err := compose.Lookup(c.StyleGuide, c.Language)
		if err != nil {
			return err
		}
		deps := make(map[string]string)
		for _, name := range entry.DependencyNames() {
			v, _ := table.Lookup(name)
			deps[name] = v
		}
		entries = append(entries, matrixEntry{
			Combination:  c.String(),
			Extends:      entry.ExtendsList(),
			Dependencies: deps,
		})
	}

	if asJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling matrix: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COMBINATION\tEXTENDS\tDEPENDENCIES")
	for i, c := range compose.Matrix() {
		entry, _ := compose.Lookup(c.StyleGuide, c.Language)
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			entries[i].Combination,
			strings.Join(entries[i].Extends, ", "),
			strings.Join(entry.DependencyNames(), ", "))
	}
	return w.Flush()
}
