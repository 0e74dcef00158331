package demo

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/shinji-kodama/langtour/internal/model"
)

// transientLines is what file-write puts in the transient file.
var transientLines = []string{"line1", "line2"}

func fileRead() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "file-read",
			Category: model.CategoryIO,
			Summary:  "print the transient file line by line if it exists",
			Expected: []string{},
		},
		Run: func(env *Env) error {
			path := env.TransientPath()
			if _, err := os.Stat(path); err != nil {
				if errors.Is(err, os.ErrNotExist) {
					env.Logger.Debug("transient file absent", "path", path)
					return nil
				}
				return ioFailure("stat", path, err)
			}
			lines, err := readLines(path)
			if err != nil {
				return err
			}
			for _, l := range lines {
				env.Puts(l)
			}
			return nil
		},
		// A file left behind by an earlier --keep-file run is printed.
		Check: func(lines []string) error {
			if len(lines) == 0 {
				return nil
			}
			return matchLines(transientLines, lines)
		},
	}
}

func fileWrite() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "file-write",
			Category: model.CategoryIO,
			Summary:  "write two lines to a transient file and read them back",
			Expected: transientLines,
		},
		Run: func(env *Env) error {
			path := env.TransientPath()
			if err := writeLines(path, transientLines); err != nil {
				return err
			}
			if !env.KeepFile {
				defer func() {
					if err := os.Remove(path); err != nil {
						env.Logger.Warn("failed to remove transient file", "path", path, "error", err)
					}
				}()
			}

			lines, err := readLines(path)
			if err != nil {
				return err
			}
			for _, l := range lines {
				env.Puts(l)
			}
			return nil
		},
	}
}

// writeLines creates path and writes one line per entry. The file is
// closed on every return path and a failed close is reported.
func writeLines(path string, lines []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return ioFailure("open", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioFailure("close", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return ioFailure("write", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return ioFailure("write", path, err)
	}
	return nil
}

// readLines returns the lines of path without their terminators.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioFailure("open", path, err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, ioFailure("read", path, err)
	}
	return lines, nil
}

func envUser() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "env-user",
			Category: model.CategoryIO,
			Summary:  "print the current user from the environment, or an empty line",
			Expected: []string{"<value of $USER, or empty>"},
		},
		Run: func(env *Env) error {
			var v any
			if s, ok := env.LookupEnv(env.EnvVar); ok {
				v = s
			} else {
				env.Logger.Debug("environment variable not set", "name", env.EnvVar)
			}
			env.Puts(v)
			return nil
		},
		Check: func(lines []string) error {
			if len(lines) != 1 {
				return fmt.Errorf("expected exactly 1 line, got %d: %q", len(lines), lines)
			}
			return nil
		},
	}
}
