package value

import (
	"reflect"
	"regexp"
)

// Class names the runtime kind of a value.
type Class string

const (
	ClassNil     Class = "NilClass"
	ClassTrue    Class = "TrueClass"
	ClassFalse   Class = "FalseClass"
	ClassInteger Class = "Integer"
	ClassFloat   Class = "Float"
	ClassString  Class = "String"
	ClassSymbol  Class = "Symbol"
	ClassArray   Class = "Array"
	ClassHash    Class = "Hash"
	ClassRange   Class = "Range"
	ClassRegexp  Class = "Regexp"
	ClassObject  Class = "Object"
)

// ClassOf returns the Class of v.
func ClassOf(v any) Class {
	switch x := v.(type) {
	case nil:
		return ClassNil
	case bool:
		if x {
			return ClassTrue
		}
		return ClassFalse
	case int, int64:
		return ClassInteger
	case float64:
		return ClassFloat
	case string:
		return ClassString
	case Symbol:
		return ClassSymbol
	case Array, []any:
		return ClassArray
	case *Hash:
		return ClassHash
	case IntRange, CharRange:
		return ClassRange
	case *regexp.Regexp:
		return ClassRegexp
	default:
		return ClassObject
	}
}

// Match reports whether v is an instance of c. Every value is an Object.
func (c Class) Match(v any) bool {
	if c == ClassObject {
		return true
	}
	return ClassOf(v) == c
}

// CaseEqual implements the case-equality relation (pattern === v) that
// drives case/when:
//   - a Regexp matches strings containing a match
//   - a Class matches its instances
//   - a range matches values it includes
//   - anything else falls back to equality
func CaseEqual(pattern, v any) bool {
	switch p := pattern.(type) {
	case *regexp.Regexp:
		s, ok := v.(string)
		return ok && p.MatchString(s)
	case Class:
		return p.Match(v)
	case IntRange:
		return p.Include(v)
	case CharRange:
		return p.Include(v)
	default:
		return Equal(pattern, v)
	}
}

// Equal compares two values. Integers and floats compare numerically;
// collections compare element by element.
func Equal(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	switch x := a.(type) {
	case Array:
		y, ok := b.(Array)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Hash:
		y, ok := b.(*Hash)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for _, p := range x.pairs {
			other, found := y.Get(p.Key)
			if !found || !Equal(p.Value, other) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}
