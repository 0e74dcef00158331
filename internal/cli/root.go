// Package cli implements the cobra-based CLI commands for langtour.
//
// Each subcommand (run, list, show, verify, clean) is defined in its own
// file within this package. This file defines the root command that serves
// as the parent for all subcommands and handles global flags.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/langtour/internal/logging"
	"github.com/shinji-kodama/langtour/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	jsonOutput bool

	// verbose enables debug logging on stderr.
	verbose bool

	// configPath is an explicit config file. Empty means search workDir.
	configPath string

	// workDir is where the config is searched for and where the
	// transient file is written.
	workDir string
)

// Version, Commit, and Date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// The root command itself does not perform any action; it only provides
// help text and global flags. Actual functionality is provided by
// subcommands (run, list, show, verify, clean).
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "langtour",
		Short: "A runnable tour of small language-feature demonstrations",
		Long: `langtour runs a catalog of tiny, self-contained demonstration units:
conditionals and loops, truthiness, variadic and block-taking functions,
file and environment I/O, string, collection and hash helpers, and
variable scoping rules.

Each unit prints a few lines to stdout. Units run in a fixed order and a
failing unit never stops the ones after it.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// Logging is configured once the flags are parsed, before any
		// subcommand runs.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logging.Config{
				Verbose: verbose,
				JSON:    jsonOutput,
				Writer:  cmd.ErrOrStderr(),
			})
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: .langtour.yaml in --dir)")
	rootCmd.PersistentFlags().StringVar(&workDir, "dir", ".", "Directory for the config file and the transient file")

	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewShowCommand())
	rootCmd.AddCommand(NewVerifyCommand())
	rootCmd.AddCommand(NewCleanCommand())

	return rootCmd
}

// Execute runs the root command and exits with the appropriate code.
// This is the main entry point called from main.go. An interrupt cancels
// the command context, which stops a run between two units.
func Execute(rootCmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(int(reportError(rootCmd.ErrOrStderr(), err)))
	}
}

// reportError prints err to w and returns the exit code it maps to.
// CLIError types carry their own exit codes; other errors map to 1.
func reportError(w io.Writer, err error) model.ExitCode {
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(w, cliErr.Message, cliErr.Err)
		return cliErr.Code
	}
	printError(w, err.Error(), nil)
	return model.ExitGeneralError
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag. Errors always go to
// stderr, even in JSON mode, because stdout is reserved for command output.
func printError(w io.Writer, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// VerboseLog records a debug message through the global logger. Nothing
// is printed unless --verbose is set.
func VerboseLog(format string, args ...interface{}) {
	logging.L().Debug(fmt.Sprintf(format, args...))
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}

// writeJSON marshals v with two-space indentation and writes it to w.
func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to encode JSON output", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
