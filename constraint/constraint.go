package constraint

import "github.com/katalvlaran/lvlogic/core"

// Constraint is the single capability the solver needs from a rule.
//
// Implementations must be stateless with respect to the Solutions they
// inspect: Evaluate may mutate s (filling in forced values) but the
// constraint itself retains no memory between calls, so one instance can
// safely serve every branch of the search.
type Constraint interface {
	// Name identifies the constraint in diagnostics. It plays no part in
	// the constraint's logical identity.
	Name() string

	// Evaluate inspects s under its current definite assignments and
	// reports:
	//
	//   - core.Conflict if the constraint can no longer be satisfied;
	//     the constraint must not mutate s any further once conflict is
	//     detected (the caller discards the whole candidate).
	//   - core.Progress if it moved at least one slot Maybe→definite.
	//   - core.NoChange if it deduced nothing new.
	Evaluate(s *core.Solution) core.Result
}

// cloneIndexes copies an index list so a constraint stays immutable even
// when the caller reuses or rewrites its argument slice afterwards.
func cloneIndexes(indexes []int) []int {
	return append([]int(nil), indexes...)
}
