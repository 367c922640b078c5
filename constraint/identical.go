package constraint

import "github.com/katalvlaran/lvlogic/core"

// identical enforces pairwise equality between two parallel index lists.
type identical struct {
	name string
	a, b []int
}

// Identical returns a constraint enforcing, for every position i, that
// slot a[i] and slot b[i] hold the same value. A pair holding opposite
// definite values is a Conflict; a pair with one definite side and one
// Maybe side forces the Maybe side to match.
//
// Both lists are copied, so the caller may reuse its slices (the zebra
// encoding rotates a row in place between calls, for instance).
//
// Panics if the lists differ in length.
func Identical(name string, a, b []int) Constraint {
	if len(a) != len(b) {
		panic("constraint: Identical index lists differ in length")
	}

	return &identical{name: name, a: cloneIndexes(a), b: cloneIndexes(b)}
}

func (c *identical) Name() string { return c.name }

func (c *identical) Evaluate(s *core.Solution) core.Result {
	result := core.NoChange
	for i := range c.a {
		va, vb := s.Get(c.a[i]), s.Get(c.b[i])

		// Opposite definite values can never be reconciled.
		if va.Definite() && vb.Definite() && va != vb {
			return core.Conflict
		}

		// One side definite, the other open: the open side must match.
		if va == core.Maybe && vb != core.Maybe {
			s.Set(c.a[i], vb)
			result = core.Progress
		}
		if vb == core.Maybe && va != core.Maybe {
			s.Set(c.b[i], va)
			result = core.Progress
		}
	}

	return result
}
