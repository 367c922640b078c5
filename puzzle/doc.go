// Package puzzle implements the search engine: fixpoint constraint
// propagation interleaved with depth-first branch-and-prune search.
//
// What:
//
//   - Puzzle: a fixed slot count plus an ordered constraint collection,
//     assembled once via New and AddConstraint.
//   - Solve: runs an explicit LIFO work-list of candidate Solutions.
//     Each candidate is propagated to a fixpoint (every constraint, in
//     registration order, until a full pass deduces nothing, stopping
//     the pass early on the first Conflict), then discarded on conflict,
//     emitted when fully determined, or split into two branches on its
//     first undetermined slot.
//   - Observer: an injectable sink for every propagation, prune, branch
//     and solution event. The default observer is silent.
//
// Why:
//
//   - Constraints only fire provably necessary deductions, so the
//     branch step is the sole source of nondeterminism — and it is
//     deterministic too: always the lowest open slot, No pushed before
//     Yes. Reruns with the same inputs reproduce the same solutions in
//     the same discovery order.
//
// Complexity:
//
//   - Each branch strictly reduces the open slots along its path, so
//     every path terminates after at most slot-count splits. Worst-case
//     breadth is 2^(open slots), pruned early by Conflict detection.
//     Memory is O(slots) per live candidate on the work-list.
//
// Options:
//
//   - WithObserver(o): install a diagnostics sink for the Solve run.
//
// Solve returns the solutions found (possibly none, possibly several) —
// an unsatisfiable constraint set is an empty result, never an error.
package puzzle
