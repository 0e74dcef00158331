package value

import (
	"fmt"
	"math/rand"
	"strings"
)

// Array is a growable, heterogeneous list.
type Array []any

// Slice returns length elements starting at start. A negative start counts
// back from the end. The second result is false when start lies outside
// the array, in which case there is no slice at all (as opposed to an
// empty one).
func (a Array) Slice(start, length int) (Array, bool) {
	if start < 0 {
		start += len(a)
	}
	if start < 0 || start > len(a) || length < 0 {
		return nil, false
	}
	end := start + length
	if end > len(a) {
		end = len(a)
	}
	out := make(Array, end-start)
	copy(out, a[start:end])
	return out, true
}

// Range returns the elements from first to last inclusive. Negative
// indexes count back from the end.
func (a Array) Range(first, last int) (Array, bool) {
	if first < 0 {
		first += len(a)
	}
	if last < 0 {
		last += len(a)
	}
	length := last - first + 1
	if length < 0 {
		length = 0
	}
	return a.Slice(first, length)
}

// Set assigns v at index i. Assigning past the end grows the array and
// fills the gap with nil.
func (a *Array) Set(i int, v any) error {
	if i < 0 {
		i += len(*a)
		if i < 0 {
			return fmt.Errorf("index %d too small for array; minimum: -%d", i-len(*a), len(*a))
		}
	}
	for len(*a) <= i {
		*a = append(*a, nil)
	}
	(*a)[i] = v
	return nil
}

// Push appends values to the end of the array.
func (a *Array) Push(vs ...any) {
	*a = append(*a, vs...)
}

// Pop removes and returns the last element, or nil when the array is
// empty.
func (a *Array) Pop() any {
	if len(*a) == 0 {
		return nil
	}
	last := (*a)[len(*a)-1]
	*a = (*a)[:len(*a)-1]
	return last
}

// Shift removes and returns the first element, or nil when the array is
// empty.
func (a *Array) Shift() any {
	if len(*a) == 0 {
		return nil
	}
	first := (*a)[0]
	*a = (*a)[1:]
	return first
}

// Sample returns n elements drawn from xs without replacement. When n is
// larger than the array every element is returned, in random order.
func Sample(rng *rand.Rand, xs Array, n int) Array {
	if n > len(xs) {
		n = len(xs)
	}
	if n <= 0 {
		return Array{}
	}
	perm := rng.Perm(len(xs))
	out := make(Array, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, xs[idx])
	}
	return out
}

// Max returns the largest numeric element of xs. It returns nil for an
// empty array and an error if any element is not numeric.
func Max(xs Array) (any, error) {
	var best any
	var bestF float64
	for i, x := range xs {
		f, ok := toFloat(x)
		if !ok {
			return nil, fmt.Errorf("comparison of %s with %s failed", ClassOf(x), ClassOf(best))
		}
		if i == 0 || f > bestF {
			best, bestF = x, f
		}
	}
	return best, nil
}

// Pair is one key/value entry of a Hash.
type Pair struct {
	Key   any
	Value any
}

// Hash is an insertion-ordered map. Keys are compared with ==, so they
// must be comparable (strings, symbols, numbers).
type Hash struct {
	pairs []Pair
	index map[any]int
}

// NewHash builds a Hash from pairs, later pairs overwriting earlier ones
// with the same key.
func NewHash(pairs ...Pair) *Hash {
	h := &Hash{index: make(map[any]int, len(pairs))}
	for _, p := range pairs {
		h.Set(p.Key, p.Value)
	}
	return h
}

// Set stores v under k, keeping the original position of an existing key.
func (h *Hash) Set(k, v any) {
	if h.index == nil {
		h.index = make(map[any]int)
	}
	if i, ok := h.index[k]; ok {
		h.pairs[i].Value = v
		return
	}
	h.index[k] = len(h.pairs)
	h.pairs = append(h.pairs, Pair{Key: k, Value: v})
}

// Get returns the value stored under k.
func (h *Hash) Get(k any) (any, bool) {
	i, ok := h.index[k]
	if !ok {
		return nil, false
	}
	return h.pairs[i].Value, true
}

// Len returns the number of entries.
func (h *Hash) Len() int {
	return len(h.pairs)
}

// Pairs returns a copy of the entries in insertion order.
func (h *Hash) Pairs() []Pair {
	out := make([]Pair, len(h.pairs))
	copy(out, h.pairs)
	return out
}

// Inspect returns the literal notation, e.g. {:key=>"value"}.
func (h *Hash) Inspect() string {
	parts := make([]string, 0, len(h.pairs))
	for _, p := range h.pairs {
		parts = append(parts, Inspect(p.Key)+"=>"+Inspect(p.Value))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// IntRange is an integer range. Inclusive ranges are written first..last,
// exclusive ones first...last.
type IntRange struct {
	First     int
	Last      int
	Exclusive bool
}

// String returns the literal notation of the range.
func (r IntRange) String() string {
	if r.Exclusive {
		return fmt.Sprintf("%d...%d", r.First, r.Last)
	}
	return fmt.Sprintf("%d..%d", r.First, r.Last)
}

// Include reports whether v lies within the range. Any numeric value is
// accepted, so a float between the bounds is included even though Each
// would never yield it.
func (r IntRange) Include(v any) bool {
	f, ok := toFloat(v)
	if !ok {
		return false
	}
	if f < float64(r.First) {
		return false
	}
	if r.Exclusive {
		return f < float64(r.Last)
	}
	return f <= float64(r.Last)
}

// Each calls fn for every integer in the range, in order.
func (r IntRange) Each(fn func(int)) {
	last := r.Last
	if r.Exclusive {
		last--
	}
	for i := r.First; i <= last; i++ {
		fn(i)
	}
}

// ToA returns the integers of the range as an Array.
func (r IntRange) ToA() Array {
	var out Array
	r.Each(func(i int) { out = append(out, i) })
	return out
}

// CharRange is an inclusive range of single characters, e.g. 'a'..'z'.
type CharRange struct {
	First rune
	Last  rune
}

// String returns the literal notation of the range.
func (r CharRange) String() string {
	return fmt.Sprintf("%q..%q", string(r.First), string(r.Last))
}

// ToA returns each character of the range as a one-character string.
func (r CharRange) ToA() Array {
	var out Array
	for c := r.First; c <= r.Last; c++ {
		out = append(out, string(c))
	}
	return out
}

// Include reports whether v is a one-character string within the range.
func (r CharRange) Include(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	runes := []rune(s)
	return len(runes) == 1 && runes[0] >= r.First && runes[0] <= r.Last
}

// toFloat converts the numeric kinds used by the demonstrations.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
