package constraint

import "github.com/katalvlaran/lvlogic/core"

// forcedDisjunction encodes "if slot p is Yes, at least one slot in any
// is Yes".
type forcedDisjunction struct {
	name string
	p    int
	any  []int
}

// ForcedDisjunction returns a constraint requiring that slot p being Yes
// implies at least one of the any slots is Yes. Evaluation:
//
//   - Once every any slot is definitely No, p is forced to No
//     (contrapositive; if p already holds Yes this is a Conflict).
//   - If p is Yes, no any slot is Yes and exactly one is still Maybe,
//     that last candidate is forced to Yes.
//   - Anything weaker is NoChange.
//
// The any list is copied; the caller may reuse its slice.
func ForcedDisjunction(name string, p int, any []int) Constraint {
	return &forcedDisjunction{name: name, p: p, any: cloneIndexes(any)}
}

func (c *forcedDisjunction) Name() string { return c.name }

func (c *forcedDisjunction) Evaluate(s *core.Solution) core.Result {
	noes := s.Count(c.any, core.No)

	// Nothing in the set can ever be true, so p cannot be either.
	if noes == len(c.any) {
		return s.Set(c.p, core.No)
	}

	if s.Get(c.p) == core.Yes {
		maybes := s.Count(c.any, core.Maybe)
		if maybes == 1 && noes+1 == len(c.any) {
			// One candidate left and p needs it: force it.
			for _, i := range c.any {
				if s.Get(i) == core.Maybe {
					return s.Set(i, core.Yes)
				}
			}
		}
	}

	return core.NoChange
}
