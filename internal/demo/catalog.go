package demo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shinji-kodama/langtour/internal/model"
)

// Catalog returns every unit in execution order. A fresh slice is built on
// each call so that no state survives between runs.
func Catalog() []Unit {
	return []Unit{
		rangeEach(),
		unless(),
		unlessModifier(),
		untilLoop(),
		whileModifier(),
		truthiness(),
		caseEquality(),
		caseClass(),
		caseAsIf(),
		variadicMax(),
		implicitBlock(),
		explicitBlock(),
		fileRead(),
		fileWrite(),
		envUser(),
		quotedLines(),
		methodGrep(),
		arrayIndex(),
		arraySample(),
		stackQueue(),
		ranges(),
		rangeSample(),
		hashPrint(),
		defaultValue(),
		methodScope(),
		classScope(),
		blockScope(),
		accessControl(),
	}
}

// Lookup returns the unit with the given name.
func Lookup(units []Unit, name string) (Unit, bool) {
	for _, u := range units {
		if u.Name == name {
			return u, true
		}
	}
	return Unit{}, false
}

// Names returns the unit names sorted alphabetically, for error messages.
func Names(units []Unit) []string {
	names := make([]string, 0, len(units))
	for _, u := range units {
		names = append(names, u.Name)
	}
	sort.Strings(names)
	return names
}

// ValidateCatalog checks that every unit is well formed and that names
// are unique.
func ValidateCatalog(units []Unit) error {
	seen := make(map[string]bool, len(units))
	var problems []string
	for _, u := range units {
		if err := u.Validate(); err != nil {
			problems = append(problems, err.Error())
		}
		if u.Run == nil {
			problems = append(problems, fmt.Sprintf("unit %q has no Run function", u.Name))
		}
		if seen[u.Name] {
			problems = append(problems, fmt.Sprintf("duplicate unit name %q", u.Name))
		}
		seen[u.Name] = true
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid catalog:\n\t%s", strings.Join(problems, "\n\t"))
	}
	return nil
}

// Filter keeps the units in categories (all when empty), in catalog
// order.
func Filter(units []Unit, categories []model.Category) []Unit {
	if len(categories) == 0 {
		return units
	}
	want := make(map[model.Category]bool, len(categories))
	for _, c := range categories {
		want[c] = true
	}
	out := make([]Unit, 0, len(units))
	for _, u := range units {
		if want[u.Category] {
			out = append(out, u)
		}
	}
	return out
}
