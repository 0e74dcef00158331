package value

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Symbol is an interned name, written with a leading colon (e.g., :key).
type Symbol string

// String returns the symbol name without the colon.
func (s Symbol) String() string {
	return string(s)
}

// Inspect returns the literal notation for v, as shown by the p helper.
//
//	nil            → nil
//	"today"        → "today"
//	Symbol("key")  → :key
//	Array{1, nil}  → [1, nil]
//	hash           → {:key=>"value"}
//	IntRange{1, 5} → 1..5
func Inspect(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return formatFloat(x)
	case string:
		return strconv.Quote(x)
	case Symbol:
		return ":" + string(x)
	case Array:
		return inspectArray(x)
	case []any:
		return inspectArray(Array(x))
	case *Hash:
		return x.Inspect()
	case IntRange:
		return x.String()
	case CharRange:
		return x.String()
	case Class:
		return string(x)
	case *regexp.Regexp:
		return "/" + x.String() + "/"
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// ToS returns the print notation for v, as written by puts and print.
// Strings and symbols are written raw and nil is written as nothing;
// every other value uses its literal notation.
func ToS(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case Symbol:
		return string(x)
	default:
		return Inspect(v)
	}
}

func inspectArray(a Array) string {
	parts := make([]string, 0, len(a))
	for _, e := range a {
		parts = append(parts, Inspect(e))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatFloat always keeps a fractional part so that 2.0 is not confused
// with the integer 2.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Capitalize upper-cases the first character of s and lower-cases the
// rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}

// Lines splits s into lines, keeping the line terminators, the same way a
// multi-line string literal is iterated line by line.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	for s != "" {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}
