// clean.go implements the "langtour clean" command.
//
// The clean command removes the transient file that file-write leaves
// behind when run with --keep-file (or keep_file in the config). By
// default the command prompts for confirmation; --force skips the prompt.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/langtour/internal/demo"
	"github.com/shinji-kodama/langtour/internal/model"
)

// cleanFlags holds the flag values for the clean command.
type cleanFlags struct {
	// force skips the interactive confirmation prompt when true.
	force bool
}

// NewCleanCommand creates the "clean" cobra command.
func NewCleanCommand() *cobra.Command {
	flags := &cleanFlags{}

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the transient file",
		Long: `Remove the transient file written by the file-write unit.

Unless --force is specified, the command prompts for confirmation.

Examples:
  langtour clean
  langtour clean --force`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Remove without confirmation")

	return cmd
}

// runClean finds the transient file, optionally prompts, and removes it.
func runClean(cmd *cobra.Command, flags *cleanFlags) error {
	cfg, err := loadConfig(demo.Catalog())
	if err != nil {
		return err
	}
	path := filepath.Join(workDir, cfg.TransientFile)

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		VerboseLog("No transient file at %s", path)
		return printCleanResult(cmd.OutOrStdout(), path, false)
	}
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("failed to inspect %s", path), err)
	}
	if !info.Mode().IsRegular() {
		return model.NewCLIError(model.ExitGeneralError, fmt.Sprintf("%s is not a regular file", path))
	}

	if !flags.force {
		confirmed, err := promptConfirmation(cmd.InOrStdin(), cmd.OutOrStdout(), path)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to read user input", err)
		}
		if !confirmed {
			return model.NewCLIError(model.ExitUserCancelled, "operation cancelled by user")
		}
	}

	if err := os.Remove(path); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("failed to remove %s", path), err)
	}
	VerboseLog("Removed %s", path)
	return printCleanResult(cmd.OutOrStdout(), path, true)
}

// promptConfirmation asks the user to confirm the removal. It reads a
// single line from in and checks for "y" or "yes".
func promptConfirmation(in io.Reader, out io.Writer, path string) (bool, error) {
	fmt.Fprintf(out, "About to remove %s\n", path)
	fmt.Fprint(out, "\nContinue? [y/N] ")

	scanner := bufio.NewScanner(in)
	if scanner.Scan() {
		answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
		return answer == "y" || answer == "yes", nil
	}

	// If stdin is closed or an error occurred, treat it as "no".
	if err := scanner.Err(); err != nil {
		return false, err
	}
	return false, nil
}

// printCleanResult outputs the clean result in text or JSON format.
func printCleanResult(w io.Writer, path string, removed bool) error {
	if IsJSONOutput() {
		return writeJSON(w, map[string]interface{}{
			"path":    path,
			"removed": removed,
		})
	}

	if removed {
		fmt.Fprintf(w, "Removed %s\n", path)
	} else {
		fmt.Fprintf(w, "Nothing to clean: %s does not exist\n", path)
	}
	return nil
}
