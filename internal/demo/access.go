package demo

import (
	"github.com/shinji-kodama/langtour/internal/guarded"
	"github.com/shinji-kodama/langtour/internal/model"
)

func accessControl() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "access-control",
			Category: model.CategoryAccess,
			Summary:  "private accessors are callable from the constructor only",
			Expected: []string{"0"},
		},
		Run: func(env *Env) error {
			guarded.New(env.Out, 0)
			return nil
		},
	}
}
