package runner

import (
	"errors"
	"fmt"

	"github.com/shinji-kodama/langtour/internal/demo"
	"github.com/shinji-kodama/langtour/internal/model"
)

// Mismatch records a unit whose output did not satisfy its check.
type Mismatch struct {
	// Unit is the unit name.
	Unit string

	// Err explains the mismatch.
	Err error
}

// Verify checks every executed unit in report against the catalog.
// Deterministic units must print exactly their expected lines; sampled
// units must satisfy their Check. Failed units are mismatches too.
// Skipped units are ignored.
func Verify(units []demo.Unit, report *model.RunReport) []Mismatch {
	var out []Mismatch
	for _, res := range report.Results {
		switch res.Status {
		case model.StatusSkipped:
			continue
		case model.StatusFailed:
			out = append(out, Mismatch{Unit: res.Name, Err: errors.New(res.Error)})
			continue
		}

		u, ok := demo.Lookup(units, res.Name)
		if !ok {
			out = append(out, Mismatch{Unit: res.Name, Err: fmt.Errorf("unit not in catalog")})
			continue
		}
		if err := u.Verify(res.Output); err != nil {
			out = append(out, Mismatch{Unit: res.Name, Err: err})
		}
	}
	return out
}
