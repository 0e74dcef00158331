package demo

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/shinji-kodama/langtour/internal/value"
)

// DefaultTransientFile is the name of the file written by the file-write
// unit when no other name is configured.
const DefaultTransientFile = "text.txt"

// DefaultEnvVar is the environment variable displayed by the env-user unit.
const DefaultEnvVar = "USER"

// Env is everything a unit may touch while it runs. Units never reach for
// os.Stdout, os.Getenv or the global random source directly, so a run can
// be captured and repeated in tests.
type Env struct {
	// Out receives everything the unit prints.
	Out io.Writer

	// Dir is the directory the transient file lives in.
	Dir string

	// TransientFile is the base name of the file used by the io units.
	TransientFile string

	// KeepFile leaves the transient file on disk after file-write.
	KeepFile bool

	// EnvVar is the variable shown by env-user.
	EnvVar string

	// LookupEnv resolves environment variables. os.LookupEnv in production.
	LookupEnv func(string) (string, bool)

	// Rand is the source for sampling units.
	Rand *rand.Rand

	// Logger receives debug records about what the unit is doing.
	Logger *slog.Logger
}

// NewEnv returns an Env writing to out with every other field defaulted.
func NewEnv(out io.Writer) *Env {
	return &Env{
		Out:           out,
		Dir:           ".",
		TransientFile: DefaultTransientFile,
		EnvVar:        DefaultEnvVar,
		LookupEnv:     os.LookupEnv,
		Rand:          rand.New(rand.NewSource(1)),
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// TransientPath returns the full path of the transient file.
func (e *Env) TransientPath() string {
	return filepath.Join(e.Dir, e.TransientFile)
}

// Puts writes each value on its own line. nil prints an empty line, an
// array prints one line per element and a string that already ends in a
// newline does not get a second one. With no values it prints a bare
// newline.
func (e *Env) Puts(vals ...any) {
	if len(vals) == 0 {
		fmt.Fprintln(e.Out)
		return
	}
	for _, v := range vals {
		if arr, ok := v.(value.Array); ok {
			if len(arr) == 0 {
				fmt.Fprintln(e.Out)
			}
			for _, el := range arr {
				e.Puts(el)
			}
			continue
		}
		s := value.ToS(v)
		if strings.HasSuffix(s, "\n") {
			fmt.Fprint(e.Out, s)
		} else {
			fmt.Fprintln(e.Out, s)
		}
	}
}

// Print writes each value with no separator and no trailing newline.
func (e *Env) Print(vals ...any) {
	for _, v := range vals {
		fmt.Fprint(e.Out, value.ToS(v))
	}
}

// P writes the literal notation of each value on its own line.
func (e *Env) P(vals ...any) {
	for _, v := range vals {
		fmt.Fprintln(e.Out, value.Inspect(v))
	}
}
