package demo

import (
	"github.com/shinji-kodama/langtour/internal/model"
	"github.com/shinji-kodama/langtour/internal/value"
)

// myConstant is the one piece of state shared across units. Nested scopes
// can read it; Go rejects any assignment to it at compile time.
const myConstant = -1

func methodScope() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "method-scope",
			Category: model.CategoryScope,
			Summary:  "a method body sees top-level constants but not outer locals",
			Expected: []string{"0", "[:x]", "-1"},
		},
		Run: func(env *Env) error {
			locals := value.NewBinding(nil)
			if _, err := locals.Lookup("x"); err != nil {
				env.Logger.Debug("outer local not visible", "error", err)
			}

			locals.Declare("x", 0)
			x, _ := locals.Lookup("x")
			env.Puts(x)
			env.P(locals.LocalVariables())
			env.P(myConstant)
			return nil
		},
	}
}

func classScope() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "class-scope",
			Category: model.CategoryScope,
			Summary:  "an inner scope may shadow a constant without changing the outer one",
			Expected: []string{"-1", "2", "-1"},
		},
		Run: func(env *Env) error {
			func() {
				// Until the shadowing declaration below, myConstant is
				// still the package-level one.
				env.P(myConstant)
				const myConstant = 2
				env.P(myConstant)
			}()
			env.P(myConstant)
			return nil
		},
	}
}

func blockScope() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "block-scope",
			Category: model.CategoryScope,
			Summary:  "blocks update outer locals; their own locals vanish afterwards",
			Expected: []string{"6"},
		},
		Run: func(env *Env) error {
			outer := value.NewBinding(nil)
			outer.Declare("sum", 0)

			for _, i := range (value.Array{1, 2, 3}) {
				block := value.NewBinding(outer)
				block.Declare("i", i)
				// Extra block parameters and block-local variables start as nil.
				for _, name := range []string{"j", "k", "mylocalvariable", "x", "y"} {
					block.Declare(name, nil)
				}

				sum, err := block.Lookup("sum")
				if err != nil {
					return err
				}
				block.Assign("sum", sum.(int)+i.(int))
				s, _ := block.Lookup("sum")
				block.Declare("another_local_var", s)
			}

			if _, err := outer.Lookup("another_local_var"); err != nil {
				env.Logger.Debug("block local not visible after the block", "error", err)
			}
			sum, _ := outer.Lookup("sum")
			env.Puts(sum)
			return nil
		},
	}
}
