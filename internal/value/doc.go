// Package value models the dynamically typed values that the demonstration
// units manipulate.
//
// Go has no implicit truthiness and no literal notation for symbols,
// ordered hashes or ranges, so this package provides them explicitly:
//   - Truthy implements the "only nil and false are falsy" rule
//   - Inspect and ToS render values the way the demonstrations print them
//   - CaseEqual implements the case-equality relation used by case/when
//   - Array, Hash, IntRange and CharRange carry the collection semantics
//     (padding on out-of-range assignment, inclusive ranges, sampling)
//   - Binding records local variable names for scope demonstrations
package value
