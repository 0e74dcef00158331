package demo

import (
	"github.com/shinji-kodama/langtour/internal/model"
	"github.com/shinji-kodama/langtour/internal/value"
)

// splatMax takes a leading fixed argument, a splat in the middle and a
// trailing fixed argument, and returns the max of the splat. Go only allows
// a variadic parameter in last position, so the trailing argument is split
// off by hand.
func splatMax(arg1 any, rest ...any) (any, error) {
	_ = arg1
	if len(rest) == 0 {
		return nil, nil
	}
	args, argN := value.Array(rest[:len(rest)-1]), rest[len(rest)-1]
	_ = argN
	return value.Max(args)
}

func variadicMax() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "variadic-max",
			Category: model.CategoryFunctions,
			Summary:  "max of the arguments between the first and the last",
			Expected: []string{"3"},
		},
		Run: func(env *Env) error {
			m, err := splatMax("a", 2, 3, -3, 100)
			if err != nil {
				return err
			}
			env.Puts(m)
			return nil
		},
	}
}

// yieldIfGiven calls block when one was passed.
func yieldIfGiven(block func()) {
	if block != nil {
		block()
	}
}

func implicitBlock() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "implicit-block",
			Category: model.CategoryFunctions,
			Summary:  "yield only when a block is given",
			Expected: []string{"block implicit"},
		},
		Run: func(env *Env) error {
			yieldIfGiven(nil)
			yieldIfGiven(func() { env.Puts("block implicit") })
			return nil
		},
	}
}

// callBlock takes an optional leading argument and the block as an
// explicit parameter.
func callBlock(arg1 int, lastArg func()) {
	_ = arg1
	if lastArg != nil {
		lastArg()
	}
}

func explicitBlock() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "explicit-block",
			Category: model.CategoryFunctions,
			Summary:  "receive the block as a named parameter and call it",
			Expected: []string{"block explicit"},
		},
		Run: func(env *Env) error {
			callBlock(0, nil)
			callBlock(0, func() { env.Puts("block explicit") })
			return nil
		},
	}
}
