package demo

import (
	"github.com/shinji-kodama/langtour/internal/model"
	"github.com/shinji-kodama/langtour/internal/value"
)

func rangeEach() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "range-each",
			Category: model.CategoryControl,
			Summary:  "iterate an inclusive range, printing without newlines",
			Expected: []string{"123"},
		},
		Run: func(env *Env) error {
			value.IntRange{First: 1, Last: 3}.Each(func(i int) {
				env.Print(i)
			})
			env.Puts("")
			return nil
		},
	}
}

func unless() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "unless",
			Category: model.CategoryControl,
			Summary:  "negated conditional block",
			Expected: []string{"5"},
		},
		Run: func(env *Env) error {
			x := 5
			if !(x > 5) {
				env.Puts(x)
			}
			return nil
		},
	}
}

func unlessModifier() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "unless-modifier",
			Category: model.CategoryControl,
			Summary:  "negated conditional as a statement modifier",
			Expected: []string{"5"},
		},
		Run: func(env *Env) error {
			x := 5
			if !(x > 5) {
				env.Puts(x)
			}
			return nil
		},
	}
}

func untilLoop() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "until-loop",
			Category: model.CategoryControl,
			Summary:  "loop while a condition is false",
			Expected: []string{"5"},
		},
		Run: func(env *Env) error {
			x := 5
			for !(x > 5) {
				env.Puts(x)
				x++
			}
			return nil
		},
	}
}

func whileModifier() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "while-modifier",
			Category: model.CategoryControl,
			Summary:  "double a value while it is below 100",
			Expected: []string{"128"},
		},
		Run: func(env *Env) error {
			x := 2
			for x < 100 {
				x *= 2
			}
			env.Puts(x)
			return nil
		},
	}
}

func caseClass() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "case-class",
			Category: model.CategoryControl,
			Summary:  "case/when stops at the first matching arm (class before value)",
			Expected: []string{"I"},
		},
		Run: func(env *Env) error {
			var x any = 128
			switch {
			case value.CaseEqual(value.ClassInteger, x):
				env.Puts("I")
			case value.CaseEqual(128, x):
				env.Puts(x)
			case value.CaseEqual(value.IntRange{First: 100, Last: 130}, x):
				env.Puts(x)
			}
			return nil
		},
	}
}

func caseAsIf() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "case-as-if",
			Category: model.CategoryControl,
			Summary:  "case without a subject behaves like an if/elsif chain",
			Expected: []string{"true"},
		},
		Run: func(env *Env) error {
			switch {
			case 1 == 1:
				env.Puts(true)
			case 0 == 0:
				env.Puts(true)
			default:
				env.Puts(true)
			}
			return nil
		},
	}
}
