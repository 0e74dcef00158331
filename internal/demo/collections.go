package demo

import (
	"fmt"
	"strings"

	"github.com/shinji-kodama/langtour/internal/model"
	"github.com/shinji-kodama/langtour/internal/value"
)

// days builds the array used by the array demonstrations, already padded
// by an assignment past its end.
func days() (value.Array, []value.Array) {
	a := value.Array{"yesterday", "today", "tomorrow"}
	first, _ := a.Slice(-2, 1)
	second, _ := a.Range(1, 2)
	// Set only fails for negative indexes.
	_ = a.Set(6, "one_day")
	return a, []value.Array{first, second}
}

func arrayIndex() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "array-index",
			Category: model.CategoryCollections,
			Summary:  "negative-start slices, ranges, and nil padding on assignment",
			Expected: []string{
				`["today"]`,
				`["today", "tomorrow"]`,
				`["yesterday", "today", "tomorrow", nil, nil, nil, "one_day"]`,
			},
		},
		Run: func(env *Env) error {
			a, slices := days()
			for _, s := range slices {
				env.P(s)
			}
			env.P(a)
			return nil
		},
	}
}

func arraySample() Unit {
	src, _ := days()
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "array-sample",
			Category: model.CategoryCollections,
			Summary:  "sample 3 elements without replacement",
			Expected: []string{"<3 random elements of the padded array>"},
			Sampled:  true,
		},
		Run: func(env *Env) error {
			a, _ := days()
			env.P(value.Sample(env.Rand, a, 3))
			return nil
		},
		Check: checkSample(src, 3),
	}
}

func stackQueue() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "stack-queue",
			Category: model.CategoryCollections,
			Summary:  "an array used as a stack (pop) and a queue (shift)",
			Expected: []string{"2", "1"},
		},
		Run: func(env *Env) error {
			var stack value.Array
			stack.Push(1)
			stack.Push(2)
			env.Puts(stack.Pop())

			var q value.Array
			q.Push(1)
			q.Push(2)
			env.Puts(q.Shift())
			return nil
		},
	}
}

func ranges() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "ranges",
			Category: model.CategoryCollections,
			Summary:  "inclusive ranges include their end and any number between the bounds",
			Expected: []string{"true", "true"},
		},
		Run: func(env *Env) error {
			r := value.IntRange{First: 1, Last: 5}
			env.Puts(r.Include(5))
			env.Puts(value.CaseEqual(r, 1.7))
			return nil
		},
	}
}

func rangeSample() Unit {
	letters := value.CharRange{First: 'a', Last: 'z'}.ToA()
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "range-sample",
			Category: model.CategoryCollections,
			Summary:  "sample 5 distinct letters from a character range",
			Expected: []string{"<5 random letters>"},
			Sampled:  true,
		},
		Run: func(env *Env) error {
			env.P(value.Sample(env.Rand, letters, 5))
			return nil
		},
		Check: checkSample(letters, 5),
	}
}

// checkSample returns a Check that accepts one printed array of n
// elements drawn from src without replacement. src may hold repeated
// values (such as nil padding), so membership is checked as a multiset.
func checkSample(src value.Array, n int) func([]string) error {
	return func(lines []string) error {
		if len(lines) != 1 {
			return fmt.Errorf("expected 1 line, got %d: %q", len(lines), lines)
		}
		line := lines[0]
		if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
			return fmt.Errorf("expected an array, got %q", line)
		}
		var got []string
		if inner := line[1 : len(line)-1]; inner != "" {
			got = strings.Split(inner, ", ")
		}
		if len(got) != n {
			return fmt.Errorf("expected %d sampled element(s), got %d: %q", n, len(got), line)
		}

		available := map[string]int{}
		for _, v := range src {
			available[value.Inspect(v)]++
		}
		for _, g := range got {
			if available[g] == 0 {
				return fmt.Errorf("sampled element %s is not in the source or was drawn twice", g)
			}
			available[g]--
		}
		return nil
	}
}
