package demo

import (
	"regexp"

	"github.com/shinji-kodama/langtour/internal/model"
	"github.com/shinji-kodama/langtour/internal/value"
)

// stringMethods is the method table of the String class, in the order the
// runtime reports it.
var stringMethods = []string{
	"include?", "%", "*", "+", "count", "partition", "unpack", "sum",
	"next", "casecmp", "casecmp?", "insert", "bytesize", "match", "match?",
	"succ!", "index", "rindex", "<=>", "replace", "clear", "upto",
	"getbyte", "==", "===", "=~", "scrub", "[]", "[]=", "byteslice", "chr",
	"freeze", "inspect", "capitalize", "downcase", "dump", "upcase",
	"undump", "length", "size", "swapcase", "succ", "hash", "ord",
	"start_with?", "upcase!", "end_with?", "downcase!", "to_sym",
	"swapcase!", "chop", "lines", "chomp", "capitalize!",
}

// grepMethods returns the method names matching re as symbols, in table
// order.
func grepMethods(methods []string, re *regexp.Regexp) value.Array {
	out := value.Array{}
	for _, m := range methods {
		if re.MatchString(m) {
			out = append(out, value.Symbol(m))
		}
	}
	return out
}

func quotedLines() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "quoted-lines",
			Category: model.CategoryStrings,
			Summary:  "iterate the lines of a multi-line literal and capitalize each",
			Expected: []string{"How are you?", "I am fine"},
		},
		Run: func(env *Env) error {
			text := `how are you?
i am fine`
			for _, line := range value.Lines(text) {
				env.Puts(value.Capitalize(line))
			}
			return nil
		},
	}
}

func methodGrep() Unit {
	return Unit{
		UnitInfo: model.UnitInfo{
			Name:     "method-grep",
			Category: model.CategoryStrings,
			Summary:  "method names are symbols and can be filtered with a regexp",
			Expected: []string{
				"[:casecmp, :casecmp?, :downcase, :upcase, :swapcase, :upcase!, :downcase!, :swapcase!]",
			},
		},
		Run: func(env *Env) error {
			env.P(grepMethods(stringMethods, regexp.MustCompile(`case`)))
			return nil
		},
	}
}
