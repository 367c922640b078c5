package constraint

import "github.com/katalvlaran/lvlogic/core"

// fixed pins a single slot to a definite value.
type fixed struct {
	name  string
	index int
	value core.Truth
}

// Fixed returns a constraint forcing the slot at index to the given
// definite value. Evaluation is exactly one Set call: Progress the first
// time, NoChange afterwards, Conflict if another rule already forced the
// opposite value.
//
// Panics if value is Maybe.
func Fixed(name string, index int, value core.Truth) Constraint {
	if value == core.Maybe {
		panic("constraint: Fixed value must be definite")
	}

	return &fixed{name: name, index: index, value: value}
}

func (c *fixed) Name() string { return c.name }

func (c *fixed) Evaluate(s *core.Solution) core.Result {
	return s.Set(c.index, c.value)
}
