package demo

import (
	"bytes"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/langtour/internal/model"
)

// newTestEnv returns an Env that writes into buf, keeps the transient file
// in a per-test directory and resolves environment variables from vars.
func newTestEnv(t *testing.T, buf *bytes.Buffer, vars map[string]string) *Env {
	t.Helper()
	env := NewEnv(buf)
	env.Dir = t.TempDir()
	env.LookupEnv = func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
	return env
}

// runUnit runs the named unit in a fresh Env and returns its output lines.
func runUnit(t *testing.T, name string, env *Env, buf *bytes.Buffer) ([]string, error) {
	t.Helper()
	u, ok := Lookup(Catalog(), name)
	require.True(t, ok, "unit %q not in catalog", name)
	buf.Reset()
	err := u.Run(env)
	return SplitLines(buf.String()), err
}

// TestCatalog_Valid verifies names are unique and all metadata is well
// formed.
func TestCatalog_Valid(t *testing.T) {
	units := Catalog()
	require.NoError(t, ValidateCatalog(units))
	assert.Len(t, units, 28)
	assert.Equal(t, "range-each", units[0].Name)
	assert.Equal(t, "access-control", units[len(units)-1].Name)
}

// TestValidateCatalog_Problems checks the duplicate and missing-Run
// detection.
func TestValidateCatalog_Problems(t *testing.T) {
	u := unless()
	noRun := whileModifier()
	noRun.Run = nil

	err := ValidateCatalog([]Unit{u, u, noRun})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate unit name "unless"`)
	assert.Contains(t, err.Error(), `"while-modifier" has no Run function`)
}

// TestUnits_MatchExpected runs every unit and checks its output with
// Verify. Deterministic units must print exactly their Expected lines.
func TestUnits_MatchExpected(t *testing.T) {
	for _, u := range Catalog() {
		t.Run(u.Name, func(t *testing.T) {
			var buf bytes.Buffer
			env := newTestEnv(t, &buf, map[string]string{"USER": "alice"})
			require.NoError(t, u.Run(env))
			assert.NoError(t, u.Verify(SplitLines(buf.String())))
		})
	}
}

// TestUnits_Deterministic runs each non-sampled unit twice in isolation
// and expects identical output.
func TestUnits_Deterministic(t *testing.T) {
	for _, u := range Catalog() {
		if u.Sampled {
			continue
		}
		t.Run(u.Name, func(t *testing.T) {
			var first, second bytes.Buffer
			require.NoError(t, u.Run(newTestEnv(t, &first, nil)))
			require.NoError(t, u.Run(newTestEnv(t, &second, nil)))
			assert.Equal(t, first.String(), second.String())
		})
	}
}

// TestSampledUnits_Invariants checks length and membership across many
// seeds, and that a fixed seed reproduces the same sample.
func TestSampledUnits_Invariants(t *testing.T) {
	for _, name := range []string{"array-sample", "range-sample"} {
		t.Run(name, func(t *testing.T) {
			u, ok := Lookup(Catalog(), name)
			require.True(t, ok)
			require.True(t, u.Sampled)

			for seed := int64(0); seed < 25; seed++ {
				var buf bytes.Buffer
				env := newTestEnv(t, &buf, nil)
				env.Rand = rand.New(rand.NewSource(seed))
				require.NoError(t, u.Run(env))
				require.NoError(t, u.Verify(SplitLines(buf.String())), "seed %d", seed)
			}

			var a, b bytes.Buffer
			envA := newTestEnv(t, &a, nil)
			envA.Rand = rand.New(rand.NewSource(42))
			envB := newTestEnv(t, &b, nil)
			envB.Rand = rand.New(rand.NewSource(42))
			require.NoError(t, u.Run(envA))
			require.NoError(t, u.Run(envB))
			assert.Equal(t, a.String(), b.String())
		})
	}
}

// TestCheckSample_Rejects covers the failure modes of the sample check.
func TestCheckSample_Rejects(t *testing.T) {
	check := rangeSample().Check

	assert.NoError(t, check([]string{`["a", "b", "c", "d", "e"]`}))
	assert.Error(t, check([]string{`["a", "b", "c", "d"]`}), "too short")
	assert.Error(t, check([]string{`["a", "a", "c", "d", "e"]`}), "duplicate")
	assert.Error(t, check([]string{`["a", "b", "c", "d", "7"]`}), "not a member")
	assert.Error(t, check([]string{"a b c d e"}), "not an array")
	assert.Error(t, check(nil), "no output")

	// The padded array holds three nils, so up to three may be drawn.
	arrayCheck := arraySample().Check
	assert.NoError(t, arrayCheck([]string{`[nil, nil, nil]`}))
	assert.NoError(t, arrayCheck([]string{`["today", nil, "one_day"]`}))
	assert.Error(t, arrayCheck([]string{`["today", "today", nil]`}))
}

func TestScenario_Summation(t *testing.T) {
	var buf bytes.Buffer
	lines, err := runUnit(t, "block-scope", newTestEnv(t, &buf, nil), &buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"6"}, lines)
}

func TestScenario_Doubling(t *testing.T) {
	var buf bytes.Buffer
	lines, err := runUnit(t, "while-modifier", newTestEnv(t, &buf, nil), &buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"128"}, lines)
}

func TestScenario_VariadicMax(t *testing.T) {
	m, err := splatMax("a", 2, 3, -3, 100)
	require.NoError(t, err)
	assert.Equal(t, 3, m, "the trailing 100 is a fixed argument, not part of the splat")

	m, err = splatMax("a", 100)
	require.NoError(t, err)
	assert.Nil(t, m, "an empty splat has no max")

	_, err = splatMax("a", 1, "b", 2)
	assert.Error(t, err)
}

// TestFileWrite_RoundTrip checks that the two lines written are read back
// in order and that the file is removed afterwards.
func TestFileWrite_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	env := newTestEnv(t, &buf, nil)

	lines, err := runUnit(t, "file-write", env, &buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"line1", "line2"}, lines)

	_, statErr := os.Stat(env.TransientPath())
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "transient file should be removed")
}

// TestFileWrite_KeepFile checks that --keep-file leaves the file for
// file-read to find.
func TestFileWrite_KeepFile(t *testing.T) {
	var buf bytes.Buffer
	env := newTestEnv(t, &buf, nil)
	env.KeepFile = true

	_, err := runUnit(t, "file-write", env, &buf)
	require.NoError(t, err)

	data, err := os.ReadFile(env.TransientPath())
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", string(data))

	lines, err := runUnit(t, "file-read", env, &buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"line1", "line2"}, lines)
}

// TestFileRead_Missing verifies that a missing file prints nothing.
func TestFileRead_Missing(t *testing.T) {
	var buf bytes.Buffer
	lines, err := runUnit(t, "file-read", newTestEnv(t, &buf, nil), &buf)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

// TestFileRead_Unreadable verifies that a read failure surfaces as an
// IOFailure instead of a panic.
func TestFileRead_Unreadable(t *testing.T) {
	var buf bytes.Buffer
	env := newTestEnv(t, &buf, nil)
	// A directory in place of the file opens fine but cannot be scanned.
	require.NoError(t, os.Mkdir(env.TransientPath(), 0o755))

	_, err := runUnit(t, "file-read", env, &buf)
	require.Error(t, err)

	var ioErr *IOFailure
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "read", ioErr.Op)
	assert.Equal(t, env.TransientPath(), ioErr.Path)
}

// TestFileWrite_BadDirectory verifies that an open failure is an
// IOFailure carrying the underlying error.
func TestFileWrite_BadDirectory(t *testing.T) {
	var buf bytes.Buffer
	env := newTestEnv(t, &buf, nil)
	env.Dir = filepath.Join(env.Dir, "does-not-exist")

	_, err := runUnit(t, "file-write", env, &buf)
	require.Error(t, err)

	var ioErr *IOFailure
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "open", ioErr.Op)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "no such file or directory")
}

// TestEnvUser covers both the present and the missing variable.
func TestEnvUser(t *testing.T) {
	var buf bytes.Buffer
	lines, err := runUnit(t, "env-user", newTestEnv(t, &buf, map[string]string{"USER": "alice"}), &buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, lines)

	lines, err = runUnit(t, "env-user", newTestEnv(t, &buf, nil), &buf)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, lines, "a missing variable prints an empty line")

	env := newTestEnv(t, &buf, map[string]string{"LOGNAME": "bob"})
	env.EnvVar = "LOGNAME"
	lines, err = runUnit(t, "env-user", env, &buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, lines)
}

// TestGrepMethods checks that the table order is preserved.
func TestGrepMethods(t *testing.T) {
	got := grepMethods(stringMethods, regexp.MustCompile(`^up`))
	assert.Len(t, got, 3)
	assert.Empty(t, grepMethods(stringMethods, regexp.MustCompile(`zzz`)))
}

// TestEnv_Puts covers the printing rules of the Puts helper.
func TestEnv_Puts(t *testing.T) {
	var buf bytes.Buffer
	env := NewEnv(&buf)

	env.Puts()
	env.Puts(nil)
	env.Puts("a\n")
	env.Puts([]any{1})
	assert.Equal(t, "\n\na\n[1]\n", buf.String())
}

// TestFilter keeps catalog order and supports multiple categories.
func TestFilter(t *testing.T) {
	units := Catalog()
	assert.Equal(t, namesOf(units), namesOf(Filter(units, nil)))

	io := Filter(units, []model.Category{model.CategoryIO})
	assert.Equal(t, []string{"file-read", "file-write", "env-user"}, namesOf(io))

	scopeAndAccess := Filter(units, []model.Category{model.CategoryAccess, model.CategoryScope})
	assert.Equal(t, []string{"method-scope", "class-scope", "block-scope", "access-control"}, namesOf(scopeAndAccess))
}

func TestMatchLines(t *testing.T) {
	assert.NoError(t, matchLines(nil, []string{}))
	assert.ErrorContains(t, matchLines([]string{"a"}, []string{"b"}), `line 1: expected "a", got "b"`)
	assert.ErrorContains(t, matchLines([]string{"a"}, nil), "expected 1 line(s), got 0")
}

func namesOf(units []Unit) []string {
	names := make([]string, 0, len(units))
	for _, u := range units {
		names = append(names, u.Name)
	}
	return names
}
