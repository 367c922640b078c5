package puzzle

import (
	"github.com/katalvlaran/lvlogic/constraint"
	"github.com/katalvlaran/lvlogic/core"
)

// Puzzle owns a fixed slot count and an ordered constraint collection.
// It holds no in-flight search state: candidates are created, cloned and
// discarded entirely inside Solve, so a Puzzle may be solved repeatedly
// and always yields the same result.
type Puzzle struct {
	slots       int
	constraints []constraint.Constraint
}

// New returns a Puzzle with the given number of slots and no
// constraints. Panics if slots is negative.
func New(slots int) *Puzzle {
	if slots < 0 {
		panic("puzzle: negative slot count")
	}

	return &Puzzle{slots: slots}
}

// Slots returns the number of slots the puzzle was built with.
func (p *Puzzle) Slots() int { return p.slots }

// AddConstraint appends constraints to the collection in order.
// Registration order affects the propagation trace and iteration count,
// never the final solution set. Index ranges are not validated here; an
// out-of-range index panics during Solve.
func (p *Puzzle) AddConstraint(cs ...constraint.Constraint) {
	p.constraints = append(p.constraints, cs...)
}

// Solve explores every assignment consistent with the constraints and
// returns the fully determined ones in discovery order. Zero solutions
// means the constraint set is unsatisfiable; several solutions means the
// puzzle is underconstrained. Neither is an error.
func (p *Puzzle) Solve(opts ...Option) []*core.Solution {
	// 1. Apply solve options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Seed the work-list with one all-Maybe candidate.
	var solutions []*core.Solution
	candidates := []*core.Solution{core.NewSolution(p.slots)}

	for len(candidates) > 0 {
		candidate := candidates[len(candidates)-1]

		// 3. Deduce as much as we can: repeat full passes until one of
		//    them makes no progress, or conflicts.
		result := p.applyConstraints(candidate, o.Observer)
		for result == core.Progress {
			result = p.applyConstraints(candidate, o.Observer)
		}

		// 4. Conflict: the candidate is a dead end.
		if result == core.Conflict {
			candidates = candidates[:len(candidates)-1]
			o.Observer.Prune()
			continue
		}

		// 5. Fully determined: the candidate is an actual solution.
		branch := candidate.FirstMaybe()
		if branch == core.None {
			candidates = candidates[:len(candidates)-1]
			solutions = append(solutions, candidate)
			o.Observer.Solution(candidate)
			continue
		}

		// 6. Replace the candidate with two guesses on its first open
		//    slot. Both copies are independent; pushing No first means
		//    the Yes branch is explored first.
		candidates = candidates[:len(candidates)-1]
		no, yes := candidate.Clone(), candidate.Clone()
		no.Set(branch, core.No)
		yes.Set(branch, core.Yes)
		candidates = append(candidates, no, yes)
		o.Observer.Branch(branch)
	}

	return solutions
}

// applyConstraints runs one full pass over the constraint collection in
// registration order. It short-circuits on the first Conflict and
// otherwise reports whether any constraint made Progress.
func (p *Puzzle) applyConstraints(candidate *core.Solution, obs Observer) core.Result {
	result := core.NoChange
	for _, c := range p.constraints {
		switch c.Evaluate(candidate) {
		case core.Conflict:
			obs.Conflict(c.Name())
			return core.Conflict
		case core.Progress:
			obs.Progress(c.Name())
			result = core.Progress
		}
	}

	return result
}
