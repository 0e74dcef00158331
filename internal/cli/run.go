// run.go implements the "langtour run" command.
//
// The run command executes the selected units in catalog order and streams
// their output to stdout. A unit that fails prints its diagnostic in place
// and the run continues; failures are summarized on stderr at the end and
// do not change the exit code.

package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/langtour/internal/demo"
	"github.com/shinji-kodama/langtour/internal/model"
	"github.com/shinji-kodama/langtour/internal/runner"
)

// runFlags holds the flag values for the run command.
type runFlags struct {
	selectionFlags

	// keepFile leaves the transient file on disk after file-write.
	keepFile bool
}

// NewRunCommand creates the "run" cobra command.
func NewRunCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [unit...]",
		Short: "Run demonstration units",
		Long: `Run demonstration units in catalog order.

With no arguments every unit runs (subject to the config file). Unit names
restrict the run to those units; --category restricts it to categories.

Examples:
  langtour run
  langtour run while-modifier variadic-max
  langtour run --category io --keep-file
  langtour run --seed 42 --json`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.keepFile, "keep-file", false, "Keep the transient file written by file-write")

	return cmd
}

// runResultJSON is the JSON output of the run command.
type runResultJSON struct {
	*model.RunReport

	// Seed is the seed the sampling units used.
	Seed int64 `json:"seed"`

	// Errors groups failure messages by category.
	Errors map[string][]string `json:"errors"`
}

// runRun loads the config, runs the units and prints the outcome.
func runRun(cmd *cobra.Command, args []string, flags *runFlags) error {
	units := demo.Catalog()

	cfg, err := loadConfig(units)
	if err != nil {
		return err
	}
	if flags.keepFile {
		cfg.KeepFile = true
	}

	opts, err := runnerOptions(cmd, args, &flags.selectionFlags, cfg)
	if err != nil {
		return err
	}

	seed := resolveSeed(cmd, &flags.selectionFlags, cfg)
	VerboseLog("Running with seed %d", seed)

	// In JSON mode the unit output only appears inside the report.
	var out io.Writer = cmd.OutOrStdout()
	if IsJSONOutput() {
		out = io.Discard
	}

	r := runner.New(units, newEnv(out, cfg, seed), opts...)
	report, runErr := r.Run(cmd.Context())
	if report == nil {
		return runErr
	}

	if IsJSONOutput() {
		if err := writeJSON(cmd.OutOrStdout(), runResultJSON{
			RunReport: report,
			Seed:      seed,
			Errors:    errorsByCategory(r.Errs()),
		}); err != nil {
			return err
		}
	} else {
		printFailureSummary(cmd.ErrOrStderr(), r.Errs())
	}

	if errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded) {
		return model.WrapCLIError(model.ExitUserCancelled, "run interrupted", runErr)
	}
	return runErr
}
