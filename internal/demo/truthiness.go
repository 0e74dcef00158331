package demo

import (
	"regexp"

	"github.com/shinji-kodama/langtour/internal/model"
	"github.com/shinji-kodama/langtour/internal/value"
)

func truthiness() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "truthiness",
			Category: model.CategoryTruthiness,
			Summary:  "0 and \"\" are true; only nil and false are false",
			Expected: []string{"0", "0"},
		},
		Run: func(env *Env) error {
			conds := []struct {
				cond  any
				print int
			}{
				{cond: 0, print: 0},
				{cond: "", print: 0},
				{cond: nil, print: -1},
				{cond: false, print: -1},
			}
			for _, c := range conds {
				if value.Truthy(c.cond) {
					env.Puts(c.print)
				}
			}
			return nil
		},
	}
}

func caseEquality() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "case-equality",
			Category: model.CategoryTruthiness,
			Summary:  "the === relation: regexp match and class membership",
			Expected: []string{"matches", "128"},
		},
		Run: func(env *Env) error {
			if value.CaseEqual(regexp.MustCompile(`he`), "hello") {
				env.Puts("matches")
			}
			x := 128
			if value.CaseEqual(value.ClassInteger, x) {
				env.Puts(x)
			}
			return nil
		},
	}
}
