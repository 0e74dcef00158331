package demo

import (
	"github.com/shinji-kodama/langtour/internal/model"
	"github.com/shinji-kodama/langtour/internal/value"
)

func hashPrint() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "hash-print",
			Category: model.CategoryHashes,
			Summary:  "hash literals and trailing keyword arguments print the same",
			Expected: []string{`{:key=>"value"}`, `{:key=>"value"}`},
		},
		Run: func(env *Env) error {
			// A bare brace after a method name would parse as a block, so
			// the literal has to be parenthesized.
			env.Puts(value.NewHash(value.Pair{Key: value.Symbol("key"), Value: "value"}))

			// Trailing key: value arguments are collected into a hash.
			kwargs := func(pairs ...value.Pair) *value.Hash { return value.NewHash(pairs...) }
			env.Puts(kwargs(value.Pair{Key: value.Symbol("key"), Value: "value"}))
			return nil
		},
	}
}

func defaultValue() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "default-value",
			Category: model.CategoryHashes,
			Summary:  "x = x || 5 and x ||= 10 only assign when x is falsy",
			Expected: []string{"5", "5"},
		},
		Run: func(env *Env) error {
			var x any
			x = value.Or(x, 5)
			env.Puts(x)

			value.OrAssign(&x, 10)
			env.Puts(x)
			return nil
		},
	}
}
