package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/langtour/internal/demo"
	"github.com/shinji-kodama/langtour/internal/runner"
)

// NewShowCommand creates the "show" cobra command.
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <unit>",
		Short: "Describe one demonstration unit",
		Long: `Show a unit's category, summary and expected output without running it.

Examples:
  langtour show while-modifier
  langtour show array-sample --json`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.OutOrStdout(), args[0])
		},
	}
}

func runShow(w io.Writer, name string) error {
	units := demo.Catalog()
	if err := runner.CheckNames(units, []string{name}); err != nil {
		return err
	}
	u, _ := demo.Lookup(units, name)

	if IsJSONOutput() {
		return writeJSON(w, u.UnitInfo)
	}

	fmt.Fprintf(w, "Name:     %s\n", u.Name)
	fmt.Fprintf(w, "Category: %s\n", u.Category)
	fmt.Fprintf(w, "Sampled:  %s\n", FormatSampled(u.Sampled))
	fmt.Fprintf(w, "Summary:  %s\n", u.Summary)
	fmt.Fprintln(w, "Expected output:")
	fmt.Fprintln(w, FormatExpected(u.UnitInfo, "  "))
	return nil
}
