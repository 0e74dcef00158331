// list.go implements the "langtour list" command.
//
// The list command displays the unit catalog in execution order as a text
// table or JSON array, depending on the --json flag. An optional
// --category flag restricts the listing.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/langtour/internal/demo"
	"github.com/shinji-kodama/langtour/internal/model"
)

// listFlags holds the flag values for the list command.
type listFlags struct {
	// categories filters the listing. Empty lists every unit.
	categories []string
}

// NewListCommand creates the "list" cobra command.
func NewListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all demonstration units",
		Long: `List the demonstration units in the order they run.

Each unit is shown with its name, category, whether its output is
randomly sampled, and a one-line summary.

Examples:
  langtour list
  langtour list --category strings,collections
  langtour list --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().StringSliceVar(&flags.categories, "category", nil,
		"Only list units in these categories ("+strings.Join(categoryNames(), ", ")+")")

	return cmd
}

// runList filters the catalog and prints it.
func runList(w io.Writer, flags *listFlags) error {
	cats, err := parseCategories(flags.categories)
	if err != nil {
		return err
	}

	units := demo.Filter(demo.Catalog(), cats)
	VerboseLog("Listing %d units", len(units))

	if IsJSONOutput() {
		return printListResultJSON(w, units)
	}
	printListResultText(w, units)
	return nil
}

// printListResultJSON outputs the units as {"units": [...]}.
func printListResultJSON(w io.Writer, units []demo.Unit) error {
	type resultJSON struct {
		Units []model.UnitInfo `json:"units"`
	}

	// An empty slice renders as [] rather than null.
	result := resultJSON{Units: make([]model.UnitInfo, 0, len(units))}
	for _, u := range units {
		result.Units = append(result.Units, u.UnitInfo)
	}
	return writeJSON(w, result)
}

// printListResultText outputs the units as a table:
//
//	NAME              CATEGORY     SAMPLED  SUMMARY
//	range-each        control      no       iterate an inclusive range, ...
func printListResultText(w io.Writer, units []demo.Unit) {
	if len(units) == 0 {
		fmt.Fprintln(w, "No units found.")
		return
	}

	fmt.Fprintf(w, "%-18s %-12s %-8s %s\n", "NAME", "CATEGORY", "SAMPLED", "SUMMARY")
	for _, u := range units {
		fmt.Fprintf(w, "%-18s %-12s %-8s %s\n",
			u.Name,
			u.Category.String(),
			FormatSampled(u.Sampled),
			u.Summary,
		)
	}
}

// FormatSampled renders the sampled column.
func FormatSampled(sampled bool) string {
	if sampled {
		return "yes"
	}
	return "no"
}

// FormatExpected renders expected output lines for display, one per line
// with the given indent. Sampled units have no fixed output.
func FormatExpected(info model.UnitInfo, indent string) string {
	if info.Sampled {
		return indent + "(varies: random sample)"
	}
	if len(info.Expected) == 0 {
		return indent + "(no output)"
	}

	lines := make([]string, 0, len(info.Expected))
	for _, l := range info.Expected {
		if l == "" {
			lines = append(lines, indent+"(empty line)")
			continue
		}
		lines = append(lines, indent+l)
	}
	return strings.Join(lines, "\n")
}
