// verify.go implements the "langtour verify" command.
//
// verify runs the selected units with their output captured rather than
// printed, then checks each unit's lines: deterministic units must match
// their expected output exactly, sampled units must satisfy their size
// and membership checks. Any mismatch exits with ExitVerifyFailed.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/langtour/internal/demo"
	"github.com/shinji-kodama/langtour/internal/model"
	"github.com/shinji-kodama/langtour/internal/runner"
)

// NewVerifyCommand creates the "verify" cobra command.
func NewVerifyCommand() *cobra.Command {
	flags := &selectionFlags{}

	cmd := &cobra.Command{
		Use:   "verify [unit...]",
		Short: "Run units and check their output",
		Long: `Run units silently and check what they printed.

Exit status is 4 when at least one unit printed something unexpected or
failed outright.

Examples:
  langtour verify
  langtour verify --category collections --seed 7
  langtour verify --json`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args, flags)
		},
	}

	flags.register(cmd)
	return cmd
}

// verifyResultJSON is the JSON output of the verify command.
type verifyResultJSON struct {
	Checked    int            `json:"checked"`
	Seed       int64          `json:"seed"`
	Mismatches []mismatchJSON `json:"mismatches"`
}

type mismatchJSON struct {
	Unit  string `json:"unit"`
	Error string `json:"error"`
}

func runVerify(cmd *cobra.Command, args []string, flags *selectionFlags) error {
	units := demo.Catalog()

	cfg, err := loadConfig(units)
	if err != nil {
		return err
	}
	// verify never leaves the transient file behind.
	cfg.KeepFile = false

	opts, err := runnerOptions(cmd, args, flags, cfg)
	if err != nil {
		return err
	}

	seed := resolveSeed(cmd, flags, cfg)
	VerboseLog("Verifying with seed %d", seed)

	report, err := runner.New(units, newEnv(io.Discard, cfg, seed), opts...).Run(cmd.Context())
	if err != nil {
		return err
	}

	mismatches := runner.Verify(units, report)
	checked := len(report.Results) - report.Count(model.StatusSkipped)

	if IsJSONOutput() {
		result := verifyResultJSON{
			Checked:    checked,
			Seed:       seed,
			Mismatches: make([]mismatchJSON, 0, len(mismatches)),
		}
		for _, m := range mismatches {
			result.Mismatches = append(result.Mismatches, mismatchJSON{Unit: m.Unit, Error: m.Err.Error()})
		}
		if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	} else {
		printVerifyResultText(cmd.OutOrStdout(), report, mismatches)
	}

	if len(mismatches) > 0 {
		return model.NewCLIError(model.ExitVerifyFailed,
			fmt.Sprintf("%d of %d unit(s) did not verify", len(mismatches), checked))
	}
	return nil
}

// printVerifyResultText prints one line per executed unit followed by a
// summary line.
func printVerifyResultText(w io.Writer, report *model.RunReport, mismatches []runner.Mismatch) {
	bad := make(map[string]error, len(mismatches))
	for _, m := range mismatches {
		bad[m.Unit] = m.Err
	}

	checked := 0
	for _, res := range report.Results {
		if res.Status == model.StatusSkipped {
			continue
		}
		checked++
		if err, ok := bad[res.Name]; ok {
			fmt.Fprintf(w, "FAIL  %s: %v\n", res.Name, err)
			continue
		}
		fmt.Fprintf(w, "ok    %s\n", res.Name)
	}
	fmt.Fprintf(w, "\n%d checked, %d failed\n", checked, len(mismatches))
}
