package cli

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/nickwells/errutil.mod/errutil"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/langtour/internal/config"
	"github.com/shinji-kodama/langtour/internal/demo"
	"github.com/shinji-kodama/langtour/internal/logging"
	"github.com/shinji-kodama/langtour/internal/model"
	"github.com/shinji-kodama/langtour/internal/runner"
)

// selectionFlags are the flags shared by run and verify.
type selectionFlags struct {
	// categories restricts the run to these categories.
	categories []string

	// skip excludes these unit names.
	skip []string

	// seed seeds the sampling units. Only used when the flag is set.
	seed int64
}

// register binds the selection flags to cmd.
func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.categories, "category", nil,
		"Only run units in these categories ("+strings.Join(categoryNames(), ", ")+")")
	cmd.Flags().StringSliceVar(&f.skip, "skip", nil, "Skip these units")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Seed for the sampling units (default: config seed, else the clock)")
}

// loadConfig resolves and validates the config for the current flags.
// Every validation problem is reported at once as ExitConfigInvalid.
func loadConfig(units []demo.Unit) (*config.Config, error) {
	cfg, err := config.Resolve(configPath, workDir)
	if err != nil {
		return nil, err
	}
	if cfg.Path != "" {
		VerboseLog("Loaded config from %s", cfg.Path)
	}

	if errs := cfg.Validate(units); len(errs) > 0 {
		source := cfg.Path
		if source == "" {
			source = "defaults"
		}
		return nil, model.NewCLIError(model.ExitConfigInvalid,
			fmt.Sprintf("invalid config (%s): %s", source, config.ValidationSummary(errs)))
	}
	return cfg, nil
}

// parseCategories converts --category values to model categories.
func parseCategories(values []string) ([]model.Category, error) {
	cats := make([]model.Category, 0, len(values))
	for _, v := range values {
		c, err := model.ParseCategory(v)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError, "invalid --category value", err)
		}
		cats = append(cats, c)
	}
	return cats, nil
}

// categoryNames returns the category names for help text.
func categoryNames() []string {
	names := make([]string, 0, len(model.Categories))
	for _, c := range model.Categories {
		names = append(names, c.String())
	}
	return names
}

// runnerOptions merges positional unit names, flags and config into
// runner options. Command line values take precedence over the config.
func runnerOptions(cmd *cobra.Command, args []string, flags *selectionFlags, cfg *config.Config) ([]runner.Option, error) {
	opts := []runner.Option{runner.WithLogger(logging.L())}

	switch {
	case len(args) > 0:
		opts = append(opts, runner.WithUnits(args...))
	case len(cfg.Units) > 0:
		opts = append(opts, runner.WithUnits(cfg.Units...))
	}

	opts = append(opts, runner.WithSkip(cfg.Skip...), runner.WithSkip(flags.skip...))

	if cmd.Flags().Changed("category") {
		cats, err := parseCategories(flags.categories)
		if err != nil {
			return nil, err
		}
		opts = append(opts, runner.WithCategories(cats...))
	} else if cats := cfg.ParsedCategories(); len(cats) > 0 {
		opts = append(opts, runner.WithCategories(cats...))
	}

	return opts, nil
}

// resolveSeed picks the sampling seed: the --seed flag, then the config,
// then the clock.
func resolveSeed(cmd *cobra.Command, flags *selectionFlags, cfg *config.Config) int64 {
	if cmd.Flags().Changed("seed") {
		return flags.seed
	}
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

// newEnv builds the unit environment from the config.
func newEnv(out io.Writer, cfg *config.Config, seed int64) *demo.Env {
	env := demo.NewEnv(out)
	env.Dir = workDir
	env.TransientFile = cfg.TransientFile
	env.EnvVar = cfg.EnvVar
	env.KeepFile = cfg.KeepFile
	env.Rand = rand.New(rand.NewSource(seed))
	env.Logger = logging.L()
	return env
}

// errorsByCategory flattens an error map into sorted category keys with
// their messages, for both text and JSON summaries.
func errorsByCategory(errs *errutil.ErrMap) map[string][]string {
	out := make(map[string][]string, len(*errs))
	for cat, list := range *errs {
		for _, err := range list {
			out[cat] = append(out[cat], err.Error())
		}
	}
	return out
}

// printFailureSummary writes the collected unit failures to w, grouped
// by category. It prints nothing when there were no failures.
func printFailureSummary(w io.Writer, errs *errutil.ErrMap) {
	byCat := errorsByCategory(errs)
	if len(byCat) == 0 {
		return
	}

	cats := make([]string, 0, len(byCat))
	total := 0
	for cat, msgs := range byCat {
		cats = append(cats, cat)
		total += len(msgs)
	}
	sort.Strings(cats)

	fmt.Fprintf(w, "%d unit(s) reported a failure:\n", total)
	for _, cat := range cats {
		fmt.Fprintf(w, "  %s:\n", cat)
		for _, msg := range byCat[cat] {
			fmt.Fprintf(w, "    %s\n", msg)
		}
	}
}
