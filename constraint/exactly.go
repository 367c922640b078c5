package constraint

import "github.com/katalvlaran/lvlogic/core"

// exactlyN enforces an exact cardinality over a slot subset.
type exactlyN struct {
	name    string
	n       int
	indexes []int
	value   core.Truth
}

// ExactlyN returns a constraint requiring that exactly n of the given
// slots hold value, which in turn requires every other slot in the
// subset to hold the opposite value. Evaluation:
//
//   - Conflict once more than n slots hold value, or once too few slots
//     remain open to ever reach n.
//   - If n slots already hold value, every remaining Maybe slot is
//     forced to the opposite value.
//   - If every remaining Maybe slot is needed to reach n, they are all
//     forced to value.
//   - Anything in between is NoChange: intermediate partial deductions
//     are deliberately left to the search.
//
// Panics if value is Maybe or n is outside [0, len(indexes)].
func ExactlyN(name string, n int, indexes []int, value core.Truth) Constraint {
	if value == core.Maybe {
		panic("constraint: ExactlyN value must be definite")
	}
	if n < 0 || n > len(indexes) {
		panic("constraint: ExactlyN count outside [0, len(indexes)]")
	}

	return &exactlyN{name: name, n: n, indexes: cloneIndexes(indexes), value: value}
}

func (c *exactlyN) Name() string { return c.name }

func (c *exactlyN) Evaluate(s *core.Solution) core.Result {
	matches := s.Count(c.indexes, c.value)
	maybes := s.Count(c.indexes, core.Maybe)

	// Overshoot first; the shortfall test below assumes matches <= n.
	if matches > c.n {
		return core.Conflict
	}
	if matches+maybes < c.n {
		return core.Conflict
	}
	if maybes == 0 {
		return core.NoChange
	}

	// Target reached: close off every remaining open slot.
	if matches == c.n {
		for _, i := range c.indexes {
			if s.Get(i) == core.Maybe {
				s.Set(i, c.value.Not())
			}
		}

		return core.Progress
	}

	// Every remaining open slot is required to reach the target.
	if maybes == c.n-matches {
		for _, i := range c.indexes {
			if s.Get(i) == core.Maybe {
				s.Set(i, c.value)
			}
		}

		return core.Progress
	}

	return core.NoChange
}
