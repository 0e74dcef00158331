package value

// Truthy reports whether v counts as true in a conditional.
//
// Only nil and false are falsy. Zero, the empty string and empty
// collections are all truthy.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case *Hash:
		// A nil *Hash stored in an interface is still the nil value.
		return x != nil
	default:
		return true
	}
}

// Or returns a when it is truthy and b otherwise. It is the `a || b`
// default-value idiom.
func Or(a, b any) any {
	if Truthy(a) {
		return a
	}
	return b
}

// OrAssign implements `x ||= v`: x is only assigned when it is currently
// falsy.
func OrAssign(x *any, v any) {
	if !Truthy(*x) {
		*x = v
	}
}
